package usecase

import (
	"movie-booking/internal/api"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking      BookingService
	MyBookings   MyBookingsService
	Confirmation ConfirmationService
}

func NewService(apiGroup *api.API, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking:      NewBookingService(apiGroup.Booking, config.Booking, log),
		MyBookings:   NewMyBookingsService(apiGroup.Booking, log),
		Confirmation: NewConfirmationService(log),
	}
}
