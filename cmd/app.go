package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"movie-booking/internal/dto/response"
	"movie-booking/internal/usecase"
	"movie-booking/internal/wire"
	"movie-booking/pkg/utils"
)

// Run drives the booking flow from the command line: pick a movie,
// submit the draft, show the confirmation — or list booking history.
func Run(app *wire.App) error {
	var (
		token    = flag.String("token", os.Getenv("SESSION_TOKEN"), "session token from login")
		list     = flag.Bool("list", false, "show booking history instead of booking")
		movieID  = flag.String("movie", "", "movie id to book (defaults to the first listed)")
		location = flag.String("location", "", "cinema location")
		showtime = flag.String("showtime", "", "showtime slot")
		showDate = flag.String("date", "", "show date (YYYY-MM-DD)")
		seats    = flag.String("seats", "", "number of seats (1-50)")
	)
	flag.Parse()

	if *token != "" {
		app.Session.Set(*token)
	}

	ctx := context.Background()

	if *list {
		return runMyBookings(ctx, app)
	}

	return runBooking(ctx, app, *movieID, *location, *showtime, *showDate, *seats)
}

func runBooking(ctx context.Context, app *wire.App, movieID, location, showtime, showDate, seats string) error {
	movies, err := app.API.Movie.GetMovies(ctx)
	if err != nil {
		return fmt.Errorf("load movies: %w", err)
	}
	if len(movies) == 0 {
		return errors.New("no movies available")
	}

	movie := &movies[0]
	if movieID != "" {
		movie = nil
		for i := range movies {
			if movies[i].ID == movieID {
				movie = &movies[i]
				break
			}
		}
		if movie == nil {
			return fmt.Errorf("movie %s not found", movieID)
		}
	}

	form, err := app.Service.Booking.NewForm(movie)
	if err != nil {
		// No movie selected; back to the catalog
		return err
	}
	defer form.Close()

	fmt.Printf("Booking: %s\n", movie.Title)
	fmt.Printf("Locations: %s\n", strings.Join(movie.Locations, ", "))
	fmt.Printf("Showtimes: %s\n", strings.Join(form.ShowtimeOptions(), ", "))

	form.SetLocation(location)
	form.SetShowtime(showtime)
	form.SetShowDate(showDate)
	form.SetSeats(seats)

	fmt.Printf("Estimated total: %s\n", utils.FormatAmount(float64(form.EstimatedTotal())))

	if state := form.Submit(ctx); state != usecase.StateConfirmed {
		return errors.New(form.ErrorMessage())
	}

	view, err := app.Service.Confirmation.NewView(form.Record())
	if err != nil {
		return err
	}
	defer view.Close()

	if view.NotificationVisible() {
		fmt.Println("Booking confirmed successfully!")
	}
	printBooking(view.Booking())

	return nil
}

func runMyBookings(ctx context.Context, app *wire.App) error {
	bookingList := app.Service.MyBookings.NewList()
	defer bookingList.Close()

	if state := bookingList.Load(ctx); state == usecase.ListErrored {
		return errors.New(bookingList.ErrorMessage())
	}

	if bookingList.Empty() {
		fmt.Println("You have no bookings yet.")
		return nil
	}

	for _, booking := range bookingList.Bookings() {
		printBooking(&booking)
		fmt.Println()
	}

	return nil
}

func printBooking(booking *response.Booking) {
	fmt.Printf("Booking ID: %s\n", booking.BookingID)
	fmt.Printf("Movie:      %s\n", booking.Movie)
	fmt.Printf("Location:   %s\n", booking.Location)
	if booking.Showtime != "" {
		fmt.Printf("Showtime:   %s\n", booking.Showtime)
	}
	if booking.ShowDate != "" {
		fmt.Printf("Show Date:  %s\n", booking.ShowDate)
	}
	fmt.Printf("Seats:      %d\n", booking.Seats)
	if booking.TotalAmount != nil {
		fmt.Printf("Total:      %s\n", utils.FormatAmount(*booking.TotalAmount))
	}
	fmt.Printf("Booked On:  %s\n", booking.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM"))
}
