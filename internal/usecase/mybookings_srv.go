package usecase

import (
	"context"
	"sync"

	"movie-booking/internal/api"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/transport"

	"go.uber.org/zap"
)

// ListState tracks one booking-history activation.
type ListState int

const (
	ListLoading ListState = iota
	ListLoaded
	ListErrored
)

const msgFetchFallback = "Failed to fetch bookings"

type MyBookingsService interface {
	// NewList starts a fresh history view in the Loading state.
	NewList() *BookingList
}

type myBookingsService struct {
	bookings api.BookingAPI
	log      *zap.Logger
}

func NewMyBookingsService(bookings api.BookingAPI, log *zap.Logger) MyBookingsService {
	return &myBookingsService{
		bookings: bookings,
		log:      log.With(zap.String("service", "my_bookings")),
	}
}

func (s *myBookingsService) NewList() *BookingList {
	return &BookingList{
		bookings: s.bookings,
		log:      s.log,
	}
}

// BookingList is a load-once view of the user's booking history.
// A failed load is shown, not retried; the user re-activates the view
// to try again.
type BookingList struct {
	bookings api.BookingAPI
	log      *zap.Logger

	mu      sync.Mutex
	state   ListState
	records []response.Booking
	errMsg  string
	closed  bool
}

// Load fetches the history once and settles the view in Loaded or
// Errored. An empty history is Loaded with zero records.
func (l *BookingList) Load(ctx context.Context) ListState {
	l.mu.Lock()
	if l.closed || l.state != ListLoading {
		state := l.state
		l.mu.Unlock()
		return state
	}
	l.mu.Unlock()

	records, err := l.bookings.GetMyBookings(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	// View torn down mid-request; drop the late result
	if l.closed {
		return l.state
	}

	if err != nil {
		l.state = ListErrored
		l.errMsg = transport.ErrorMessage(err, msgFetchFallback)
		l.log.Warn("Failed to load booking history", zap.Error(err))
		return ListErrored
	}

	l.state = ListLoaded
	l.records = records
	l.log.Info("Booking history loaded", zap.Int("count", len(records)))
	return ListLoaded
}

func (l *BookingList) State() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *BookingList) Bookings() []response.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records
}

// Empty reports the explicit no-bookings-yet state.
func (l *BookingList) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == ListLoaded && len(l.records) == 0
}

func (l *BookingList) ErrorMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}

func (l *BookingList) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}
