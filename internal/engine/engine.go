package engine

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ticket-claimer/internal/claims"
	"ticket-claimer/internal/eligibility"
	"ticket-claimer/internal/eventer"
	"ticket-claimer/internal/model"
	"ticket-claimer/internal/purchase"
)

// Catalog lists the seller's events and their ticket types.
type Catalog interface {
	EventDetails(ctx context.Context) (iter.Seq[eventer.EventDetail], error)
	TicketTypes(ctx context.Context, eventID string) (*model.TicketTypes, error)
}

type Submitter interface {
	Submit(ctx context.Context, payload any) (*purchase.Receipt, error)
}

type Engine struct {
	catalog    Catalog
	submitter  Submitter
	claims     claims.Set
	registrant model.Registrant
	log        *zap.Logger
	now        func() time.Time
}

func New(catalog Catalog, submitter Submitter, set claims.Set, registrant model.Registrant, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		catalog:    catalog,
		submitter:  submitter,
		claims:     set,
		registrant: registrant,
		log:        log,
		now:        time.Now,
	}
}

// RunCycle scans every event once and registers each eligible ticket type.
// The first error ends the cycle; claims recorded before it stay recorded.
func (e *Engine) RunCycle(ctx context.Context) *model.CycleResult {
	res := &model.CycleResult{
		CycleID:       uuid.New().String(),
		StartedAt:     e.now().UTC(),
		Registrations: []model.Registration{},
		Skips:         []model.Skip{},
	}
	log := e.log.With(zap.String("cycle_id", res.CycleID))

	err := e.scan(ctx, log, res)

	res.CompletedAt = e.now().UTC()
	res.Outcome = model.OutcomeSuccess
	if err != nil {
		res.Outcome = model.OutcomeAborted
		res.Err = err
		res.ErrorCategory = Category(err)
		res.ErrorMessage = err.Error()
	}
	return res
}

func (e *Engine) scan(ctx context.Context, log *zap.Logger, res *model.CycleResult) error {
	details, err := e.catalog.EventDetails(ctx)
	if err != nil {
		return err
	}

	for d := range details {
		if d.Skipped() {
			res.Skips = append(res.Skips, model.Skip{Link: d.Link, Code: model.SkipFetchFailed, Message: d.Err.Error()})
			continue
		}
		res.EventsSeen++

		if err := e.process(ctx, log, d.Info, res); err != nil {
			return err
		}
	}
	return nil
}

// process runs filter, submit, and record for one event.
func (e *Engine) process(ctx context.Context, log *zap.Logger, info *model.EventInfo, res *model.CycleResult) error {
	eventID := info.Event.ID
	log = log.With(zap.String("event_id", eventID))

	tt, err := e.catalog.TicketTypes(ctx, eventID)
	if err != nil {
		return err
	}
	ticket, err := eligibility.First(tt)
	if err != nil {
		return fmt.Errorf("event %s: %w", eventID, err)
	}

	claimed, err := e.claims.Contains(ctx, ticket.ID)
	if err != nil {
		return &ClaimStoreError{Err: err}
	}

	decision := eligibility.Evaluate(ticket, claimed)
	if !decision.Eligible {
		log.Info("skipping ticket", zap.String("ticket_id", ticket.ID), zap.String("reason", decision.Reason))
		res.Skips = append(res.Skips, model.Skip{EventID: eventID, Code: decision.Reason, Message: "ticket " + ticket.ID})
		return nil
	}

	payload, err := purchase.Build(e.registrant, ticket, info)
	if err != nil {
		return err
	}

	log.Info("registering", zap.String("ticket_id", ticket.ID))
	receipt, err := e.submitter.Submit(ctx, payload)
	if err != nil {
		return err
	}

	// The claim is recorded once the request completes, whatever the status.
	// A rejected registration is therefore never retried.
	reg := model.Registration{
		EventID:    eventID,
		TicketID:   ticket.ID,
		StatusCode: receipt.StatusCode,
		Rejected:   !receipt.Accepted(),
	}
	if reg.Rejected {
		log.Warn("registration rejected, recording claim anyway",
			zap.String("ticket_id", ticket.ID),
			zap.Int("status", receipt.StatusCode),
			zap.ByteString("body", receipt.Body),
		)
	}

	if err := e.claims.Add(ctx, ticket.ID); err != nil {
		return &ClaimStoreError{Err: err}
	}
	res.Registrations = append(res.Registrations, reg)
	return nil
}
