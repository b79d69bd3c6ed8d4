package api

import (
	"context"
	"encoding/json"

	"movie-booking/pkg/transport"

	"go.uber.org/zap"
)

// Requester is the one transport capability the facade needs.
type Requester interface {
	Request(ctx context.Context, endpoint string, opts transport.Options) (json.RawMessage, error)
}

// API groups one thin client per backend namespace.
type API struct {
	Auth    AuthAPI
	Movie   MovieAPI
	Booking BookingAPI
}

func NewAPI(rt Requester, log *zap.Logger) *API {
	return &API{
		Auth:    NewAuthAPI(rt, log),
		Movie:   NewMovieAPI(rt, log),
		Booking: NewBookingAPI(rt, log),
	}
}
