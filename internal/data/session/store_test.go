package session_test

import (
	"testing"

	"movie-booking/internal/data/session"

	"github.com/stretchr/testify/assert"
)

func TestStore_Lifecycle(t *testing.T) {
	store := session.NewStore()
	assert.Empty(t, store.Token())

	store.Set("tok-123")
	assert.Equal(t, "tok-123", store.Token())

	store.Clear()
	assert.Empty(t, store.Token())
}
