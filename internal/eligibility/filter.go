// Package eligibility decides whether a ticket type should be claimed.
package eligibility

import (
	"errors"

	"ticket-claimer/internal/model"
)

var ErrNoTicketTypes = errors.New("event has no ticket types")

const (
	ReasonFree           = "FREE"
	ReasonNotFree        = model.SkipNotFree
	ReasonAlreadyClaimed = model.SkipAlreadyClaimed
)

type Decision struct {
	TicketID string
	Eligible bool
	Reason   string
}

// First returns the only ticket type that is ever considered for an event.
func First(tt *model.TicketTypes) (model.TicketType, error) {
	if tt == nil || len(tt.TicketTypes) == 0 {
		return model.TicketType{}, ErrNoTicketTypes
	}
	return tt.TicketTypes[0], nil
}

// Evaluate approves a ticket only when it is free and not yet claimed.
// Price is checked first, so a paid ticket reports NOT_FREE regardless of claims.
func Evaluate(ticket model.TicketType, claimed bool) Decision {
	d := Decision{TicketID: ticket.ID}
	switch {
	case !ticket.IsFree():
		d.Reason = ReasonNotFree
	case claimed:
		d.Reason = ReasonAlreadyClaimed
	default:
		d.Eligible = true
		d.Reason = ReasonFree
	}
	return d
}
