package response

import "time"

// Booking is the backend-confirmed reservation. It is held only for
// display and never persisted client-side.
type Booking struct {
	BookingID   string    `json:"bookingId"`
	Movie       string    `json:"movie"`
	Location    string    `json:"location"`
	Showtime    string    `json:"showtime,omitempty"`
	ShowDate    string    `json:"showDate,omitempty"`
	Seats       int       `json:"seats"`
	TotalAmount *float64  `json:"totalAmount,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
