package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"movie-booking/internal/api"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/transport"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// ErrNoMovieSelected signals the caller to send the user back to the
// catalog; a booking form cannot exist without a selected movie.
var ErrNoMovieSelected = errors.New("no movie selected")

// FormState tracks one booking form interaction.
type FormState int

const (
	StateEditing FormState = iota
	StateSubmitting
	StateConfirmed
)

// Shown when a movie carries no showtimes of its own
var defaultShowtimes = []string{"10:00 AM", "1:30 PM", "4:30 PM", "7:30 PM"}

const (
	msgSelectLocation  = "Please select a location"
	msgSelectShowtime  = "Please select a showtime"
	msgSelectDate      = "Please select a date"
	msgInvalidSeats    = "Please enter a valid number of seats (minimum 1)"
	msgTooManySeats    = "Maximum 50 seats can be booked at once"
	msgCreateFallback  = "Failed to create booking"
	maxSeatsPerBooking = 50
)

type BookingService interface {
	// NewForm starts a booking interaction for the selected movie.
	NewForm(movie *response.Movie) (*BookingForm, error)
}

type bookingService struct {
	bookings     api.BookingAPI
	pricePerSeat int
	log          *zap.Logger
}

func NewBookingService(bookings api.BookingAPI, config utils.BookingConfig, log *zap.Logger) BookingService {
	return &bookingService{
		bookings:     bookings,
		pricePerSeat: config.PricePerSeat,
		log:          log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) NewForm(movie *response.Movie) (*BookingForm, error) {
	if movie == nil {
		s.log.Warn("Booking form requested without a movie")
		return nil, ErrNoMovieSelected
	}

	return &BookingForm{
		movie:        movie,
		bookings:     s.bookings,
		pricePerSeat: s.pricePerSeat,
		log:          s.log.With(zap.String("movie_id", movie.ID)),
	}, nil
}

// BookingForm drives one draft from editing through submission to
// confirmation. Seats stay a raw string until submit so the form can
// echo back whatever the user typed.
type BookingForm struct {
	movie        *response.Movie
	bookings     api.BookingAPI
	pricePerSeat int
	log          *zap.Logger

	mu         sync.Mutex
	location   string
	showtime   string
	showDate   string
	seats      string
	errMsg     string
	state      FormState
	record     *response.Booking
	generation int
	closed     bool
}

func (f *BookingForm) SetLocation(location string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.location = location
}

func (f *BookingForm) SetShowtime(showtime string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showtime = showtime
}

func (f *BookingForm) SetShowDate(showDate string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showDate = showDate
}

func (f *BookingForm) SetSeats(seats string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seats = seats
}

func (f *BookingForm) Movie() *response.Movie {
	return f.movie
}

// ShowtimeOptions returns the movie's own showtimes when it has any,
// otherwise the default slots. Only these values pass validation.
func (f *BookingForm) ShowtimeOptions() []string {
	if len(f.movie.Showtimes) > 0 {
		return f.movie.Showtimes
	}
	return defaultShowtimes
}

// EstimatedTotal is advisory; the authoritative amount comes back on
// the confirmed booking.
func (f *BookingForm) EstimatedTotal() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	seats, err := strconv.Atoi(f.seats)
	if err != nil || seats < 0 {
		return 0
	}
	return seats * f.pricePerSeat
}

func (f *BookingForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *BookingForm) Submitting() bool {
	return f.State() == StateSubmitting
}

// ErrorMessage returns the current form error, or "" when there is none.
func (f *BookingForm) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Record returns the confirmed booking exactly as the backend sent it.
func (f *BookingForm) Record() *response.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}

// Validate runs the draft checks in order and returns the first
// failure message, or "" when the draft is submittable. It never
// mutates the draft, so repeated calls agree.
func (f *BookingForm) Validate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, msg := f.validateLocked()
	return msg
}

func (f *BookingForm) validateLocked() (int, string) {
	if f.location == "" {
		return 0, msgSelectLocation
	}
	if f.showtime == "" || !f.showtimeOffered(f.showtime) {
		return 0, msgSelectShowtime
	}
	if f.showDate == "" {
		return 0, msgSelectDate
	}

	seats, err := strconv.Atoi(f.seats)
	if err != nil || seats < 1 {
		return 0, msgInvalidSeats
	}
	if seats > maxSeatsPerBooking {
		return 0, msgTooManySeats
	}

	return seats, ""
}

func (f *BookingForm) showtimeOffered(showtime string) bool {
	for _, offered := range f.ShowtimeOptions() {
		if offered == showtime {
			return true
		}
	}
	return false
}

// Submit validates the draft and, only when every check passes, sends
// it to the backend. While a submission is in flight further calls are
// no-ops. The resulting state is returned: Confirmed on success,
// Editing with an error message otherwise.
func (f *BookingForm) Submit(ctx context.Context) FormState {
	f.mu.Lock()

	if f.closed || f.state == StateSubmitting {
		state := f.state
		f.mu.Unlock()
		return state
	}

	f.errMsg = ""

	seats, msg := f.validateLocked()
	if msg != "" {
		f.errMsg = msg
		f.mu.Unlock()
		return StateEditing
	}

	f.state = StateSubmitting
	generation := f.generation
	req := &request.CreateBookingRequest{
		MovieID:  f.movie.ID,
		Location: f.location,
		Seats:    seats,
		Showtime: f.showtime,
		ShowDate: f.showDate,
	}
	f.mu.Unlock()

	booking, err := f.bookings.CreateBooking(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	// The form was closed while the request was in flight; the late
	// result must not resurrect its state.
	if f.closed || generation != f.generation {
		return f.state
	}

	if err != nil {
		f.state = StateEditing
		f.errMsg = transport.ErrorMessage(err, msgCreateFallback)
		f.log.Warn("Booking submission failed",
			zap.String("location", req.Location),
			zap.Int("seats", req.Seats),
			zap.Error(err),
		)
		return StateEditing
	}

	f.state = StateConfirmed
	f.record = booking
	f.log.Info("Booking confirmed",
		zap.String("booking_id", booking.BookingID),
		zap.Int("seats", booking.Seats),
	)
	return StateConfirmed
}

// Close abandons the form; any in-flight submission result is dropped.
func (f *BookingForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.generation++
}
