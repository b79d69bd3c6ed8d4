package api

import (
	"context"
	"fmt"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/transport"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingAPI interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.Booking, error)

	// GetMyBookings requires a session token; the server enforces it.
	GetMyBookings(ctx context.Context) ([]response.Booking, error)
}

type bookingAPI struct {
	rt  Requester
	log *zap.Logger
}

func NewBookingAPI(rt Requester, log *zap.Logger) BookingAPI {
	return &bookingAPI{
		rt:  rt,
		log: log.With(zap.String("api", "booking")),
	}
}

func (a *bookingAPI) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		a.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	raw, err := a.rt.Request(ctx, "/bookings", transport.Options{
		Method: http.MethodPost,
		Body:   req,
	})
	if err != nil {
		return nil, err
	}

	var booking response.Booking
	if err := response.DecodeData(raw, &booking); err != nil {
		return nil, fmt.Errorf("decode booking response: %w", err)
	}

	return &booking, nil
}

func (a *bookingAPI) GetMyBookings(ctx context.Context) ([]response.Booking, error) {
	raw, err := a.rt.Request(ctx, "/bookings/my", transport.Options{})
	if err != nil {
		return nil, err
	}

	var bookings []response.Booking
	if err := response.DecodeData(raw, &bookings); err != nil {
		return nil, fmt.Errorf("decode my bookings response: %w", err)
	}

	// The backend omits data when the user has no bookings yet;
	// callers still get an empty list, not an error.
	if bookings == nil {
		bookings = []response.Booking{}
	}

	return bookings, nil
}
