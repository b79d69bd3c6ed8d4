package request

type CreateBookingRequest struct {
	MovieID  string `json:"movieId" validate:"required"`
	Location string `json:"location" validate:"required"`
	Seats    int    `json:"seats" validate:"required,min=1,max=50"`
	Showtime string `json:"showtime" validate:"required"`
	ShowDate string `json:"showDate" validate:"required"`
}
