package response

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
