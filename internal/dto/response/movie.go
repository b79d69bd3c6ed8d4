package response

// Movie is selected in the catalog flow before booking starts; the
// booking form treats it as read-only input.
type Movie struct {
	ID        string   `json:"_id"`
	Title     string   `json:"title"`
	Locations []string `json:"locations"`
	Showtimes []string `json:"showtimes,omitempty"`
}
