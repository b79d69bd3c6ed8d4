package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"movie-booking/internal/dto/response"
	"movie-booking/pkg/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestList(mock *mockBookingAPI) *BookingList {
	svc := NewMyBookingsService(mock, zap.NewNop())
	return svc.NewList()
}

func TestBookingList_LoadSuccess(t *testing.T) {
	mock := &mockBookingAPI{
		myFn: func(ctx context.Context) ([]response.Booking, error) {
			return []response.Booking{
				{BookingID: "B1", Movie: "Dune", Seats: 2, CreatedAt: time.Now()},
				{BookingID: "B2", Movie: "Dune", Seats: 1, CreatedAt: time.Now()},
			}, nil
		},
	}

	list := newTestList(mock)
	require.Equal(t, ListLoading, list.State())

	state := list.Load(context.Background())

	assert.Equal(t, ListLoaded, state)
	assert.Len(t, list.Bookings(), 2)
	assert.False(t, list.Empty())
	assert.Empty(t, list.ErrorMessage())
}

func TestBookingList_EmptyHistoryIsLoadedNotErrored(t *testing.T) {
	mock := &mockBookingAPI{
		myFn: func(ctx context.Context) ([]response.Booking, error) {
			return []response.Booking{}, nil
		},
	}

	list := newTestList(mock)
	state := list.Load(context.Background())

	assert.Equal(t, ListLoaded, state)
	assert.True(t, list.Empty())
	assert.Empty(t, list.ErrorMessage())
}

func TestBookingList_LoadFailureStoresMessage(t *testing.T) {
	mock := &mockBookingAPI{
		myFn: func(ctx context.Context) ([]response.Booking, error) {
			return nil, transport.NewConnectivityError()
		},
	}

	list := newTestList(mock)
	state := list.Load(context.Background())

	assert.Equal(t, ListErrored, state)
	assert.Contains(t, list.ErrorMessage(), "Cannot connect to server")
	assert.False(t, list.Empty())
}

func TestBookingList_LoadsOncePerActivation(t *testing.T) {
	mock := &mockBookingAPI{
		myFn: func(ctx context.Context) ([]response.Booking, error) {
			return []response.Booking{{BookingID: "B1"}}, nil
		},
	}

	list := newTestList(mock)
	list.Load(context.Background())
	state := list.Load(context.Background())

	assert.Equal(t, ListLoaded, state)
	assert.Equal(t, int32(1), atomic.LoadInt32(&mock.myCalls))
}

func TestBookingList_NoFetchAfterClose(t *testing.T) {
	mock := &mockBookingAPI{}

	list := newTestList(mock)
	list.Close()
	list.Load(context.Background())

	assert.Equal(t, int32(0), atomic.LoadInt32(&mock.myCalls))
}

func TestBookingList_CloseDropsInFlightResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	mock := &mockBookingAPI{
		myFn: func(ctx context.Context) ([]response.Booking, error) {
			close(started)
			<-release
			return []response.Booking{{BookingID: "B1"}}, nil
		},
	}

	list := newTestList(mock)

	done := make(chan ListState, 1)
	go func() {
		done <- list.Load(context.Background())
	}()

	<-started
	list.Close()
	close(release)

	state := <-done
	assert.NotEqual(t, ListLoaded, state)
	assert.Nil(t, list.Bookings())
}
