package engine

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"ticket-claimer/internal/model"
)

const DefaultInterval = time.Hour

// Cycler runs one scan cycle.
type Cycler interface {
	RunCycle(ctx context.Context) *model.CycleResult
}

// Poller runs a cycle, sleeps for a fixed interval, and repeats until ctx is done.
type Poller struct {
	cycler   Cycler
	interval time.Duration
	log      *zap.Logger

	// after is swapped in tests.
	after func(time.Duration) <-chan time.Time

	last   atomic.Pointer[model.CycleResult]
	cycles atomic.Int64
}

func NewPoller(cycler Cycler, interval time.Duration, log *zap.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{
		cycler:   cycler,
		interval: interval,
		log:      log,
		after:    time.After,
	}
}

// Run blocks until ctx is cancelled. A failed cycle is logged and the loop
// carries on after the usual sleep.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info("poller started", zap.Duration("interval", p.interval))

	for {
		res := p.cycler.RunCycle(ctx)
		p.last.Store(res)
		p.cycles.Add(1)
		p.report(res)

		p.log.Info("waiting", zap.Duration("interval", p.interval))
		select {
		case <-ctx.Done():
			p.log.Info("poller stopping")
			return
		case <-p.after(p.interval):
		}
	}
}

func (p *Poller) report(res *model.CycleResult) {
	fields := []zap.Field{
		zap.String("cycle_id", res.CycleID),
		zap.String("outcome", res.Outcome),
		zap.Int("events", res.EventsSeen),
		zap.Int("registrations", len(res.Registrations)),
		zap.Int("skips", len(res.Skips)),
		zap.Duration("duration", res.CompletedAt.Sub(res.StartedAt)),
	}
	if res.Outcome == model.OutcomeAborted {
		fields = append(fields,
			zap.String("category", res.ErrorCategory),
			zap.String("error", res.ErrorMessage),
		)
		p.log.Error("cycle aborted", fields...)
		return
	}
	p.log.Info("cycle complete", fields...)
}

// Last returns the most recent cycle result, or nil before the first cycle ends.
func (p *Poller) Last() *model.CycleResult {
	return p.last.Load()
}

func (p *Poller) Cycles() int64 {
	return p.cycles.Load()
}
