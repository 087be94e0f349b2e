package errs

import (
	"errors"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("request not found")

	ErrNotAvailable    = errors.New("item is not available")
	ErrInvalidDateTime = errors.New("time is wrong")
	ErrInvalidStatus   = errors.New("no change allowed")
	ErrInvalidComment  = errors.New("no booking for comment")
	ErrPagination      = errors.New("paging invalid")

	ErrDuplicateEmail = errors.New("duplicate email")
)

// StateError reports an unrecognized booking state token.
type StateError struct {
	Value string
}

func (e StateError) Error() string {
	return "Unknown state: " + e.Value
}

// Response is the error body of every 4xx/5xx answer.
type Response struct {
	Error string `json:"error"`
}
