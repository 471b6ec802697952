package engine

import (
	"context"
	"errors"
	"fmt"

	"ticket-claimer/internal/eligibility"
	"ticket-claimer/internal/eventer"
	"ticket-claimer/internal/purchase"
)

// ClaimStoreError wraps a failure to read or write the claim set.
type ClaimStoreError struct {
	Err error
}

func (e *ClaimStoreError) Error() string {
	return "claim store: " + e.Err.Error()
}

func (e *ClaimStoreError) Unwrap() error {
	return e.Err
}

// Category names the kind of error that ended a cycle, for logs and the status page.
func Category(err error) string {
	var cs *ClaimStoreError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, eventer.ErrFetchUserData):
		return "FetchUserDataError"
	case errors.Is(err, eventer.ErrFetchTickets):
		return "FetchTicketsError"
	case errors.Is(err, eventer.ErrTagNotFound):
		return "TagNotFoundError"
	case errors.Is(err, eventer.ErrDecode):
		return "DecodeError"
	case errors.Is(err, eligibility.ErrNoTicketTypes):
		return "NoTicketTypesError"
	case errors.Is(err, purchase.ErrMissingGuestQuestion), errors.Is(err, purchase.ErrMissingEventID),
		errors.Is(err, purchase.ErrMissingCategories):
		return "PayloadError"
	case errors.As(err, &cs):
		return "ClaimStoreError"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Canceled"
	}

	// Unwrap to the innermost error so the category names its concrete type.
	for {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return fmt.Sprintf("%T", err)
}
