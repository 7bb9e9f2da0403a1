package domain

import "errors"

// UnknownErrorMessage is shown when a failed submission carries no
// human-readable reason.
const UnknownErrorMessage = "An unknown error occurred."

var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrDraftNotFound      = errors.New("checkout draft not found")
)

// ValidationError is a local precondition failure. It never reaches the
// network layer.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// BookingRejectedError carries the booking backend's rejection reason.
type BookingRejectedError struct {
	Message string
}

func (e *BookingRejectedError) Error() string {
	return "booking rejected: " + e.Reason()
}

// Reason returns the user-facing failure message, falling back to a generic
// one when the backend sent none.
func (e *BookingRejectedError) Reason() string {
	if e.Message == "" {
		return UnknownErrorMessage
	}
	return e.Message
}
