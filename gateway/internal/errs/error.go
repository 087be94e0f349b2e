package errs

import (
	"errors"
)

var (
	ErrUserHeader  = errors.New("X-Sharer-User-Id header is required")
	ErrPagination  = errors.New("paging invalid")
	ErrUnavailable = errors.New("service unavailable")
)

// Response is the error body of every 4xx/5xx answer.
type Response struct {
	Error string `json:"error"`
}
