package transport

import "errors"

// Kind classifies a failed API call so callers can branch on the
// failure mode instead of matching message text.
type Kind int

const (
	// KindRequest means the backend answered with a non-success status.
	KindRequest Kind = iota
	// KindConnectivity means the backend could not be reached at all.
	KindConnectivity
)

const (
	genericErrorMessage      = "Something went wrong"
	connectivityErrorMessage = "Cannot connect to server. Please make sure the backend server URL is correct and running."
)

type Error struct {
	Kind    Kind
	Message string
	Status  int
}

// Error returns the message verbatim; it is shown to the user as-is.
func (e *Error) Error() string {
	return e.Message
}

func NewRequestError(message string, status int) *Error {
	if message == "" {
		message = genericErrorMessage
	}
	return &Error{
		Kind:    KindRequest,
		Message: message,
		Status:  status,
	}
}

func NewConnectivityError() *Error {
	return &Error{
		Kind:    KindConnectivity,
		Message: connectivityErrorMessage,
	}
}

// IsConnectivity reports whether err is a reach-the-server failure
func IsConnectivity(err error) bool {
	var terr *Error
	return errors.As(err, &terr) && terr.Kind == KindConnectivity
}

// ErrorMessage extracts a user-facing message from any API failure,
// falling back when the error carries no message of its own.
func ErrorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
