package usecase

import (
	"errors"
	"sync"
	"time"

	"movie-booking/internal/dto/response"

	"go.uber.org/zap"
)

// ErrNoBookingData signals the caller to send the user back to the
// catalog; the confirmation view only exists after a booking.
var ErrNoBookingData = errors.New("no booking data")

// The success banner dismisses itself after this long
const notificationTimeout = 5 * time.Second

type ConfirmationService interface {
	// NewView shows the confirmed booking. The success notification is
	// visible until it times out or the view is closed.
	NewView(booking *response.Booking) (*ConfirmationView, error)
}

type confirmationService struct {
	notifyAfter time.Duration
	log         *zap.Logger
}

func NewConfirmationService(log *zap.Logger) ConfirmationService {
	return &confirmationService{
		notifyAfter: notificationTimeout,
		log:         log.With(zap.String("service", "confirmation")),
	}
}

func (s *confirmationService) NewView(booking *response.Booking) (*ConfirmationView, error) {
	if booking == nil {
		s.log.Warn("Confirmation view requested without booking data")
		return nil, ErrNoBookingData
	}

	v := &ConfirmationView{
		booking:       booking,
		notifyVisible: true,
	}
	v.timer = time.AfterFunc(s.notifyAfter, v.dismissNotification)

	return v, nil
}

// ConfirmationView owns the confirmed booking for its display lifetime
// only; nothing is persisted.
type ConfirmationView struct {
	booking *response.Booking
	timer   *time.Timer

	mu            sync.Mutex
	notifyVisible bool
	closed        bool
}

func (v *ConfirmationView) Booking() *response.Booking {
	return v.booking
}

func (v *ConfirmationView) NotificationVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notifyVisible
}

func (v *ConfirmationView) dismissNotification() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.notifyVisible = false
}

// Close cancels the pending auto-dismiss; the timer must not outlive
// the view.
func (v *ConfirmationView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.timer.Stop()
}
