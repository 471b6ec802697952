package eventer

import (
	"errors"
	"fmt"
)

var (
	ErrFetchUserData = errors.New("could not fetch seller data")
	ErrFetchEvent    = errors.New("could not fetch event")
	ErrFetchTickets  = errors.New("could not fetch ticket types")
	ErrTagNotFound   = errors.New("anti-forgery tag not found")
	ErrDecode        = errors.New("malformed response body")
)

// StatusError is returned when the site answers with a non-2xx status.
// It unwraps to the sentinel describing which call failed.
type StatusError struct {
	Kind       error
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %s returned status %d", e.Kind, e.URL, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.Kind
}
