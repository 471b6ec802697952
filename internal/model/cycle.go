package model

import "time"

type CycleResult struct {
	CycleID       string         `json:"cycle_id"`
	StartedAt     time.Time      `json:"started_at"`
	CompletedAt   time.Time      `json:"completed_at"`
	Outcome       string         `json:"outcome"`
	EventsSeen    int            `json:"events_seen"`
	Registrations []Registration `json:"registrations"`
	Skips         []Skip         `json:"skips"`
	ErrorCategory string         `json:"error_category,omitempty"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	Err           error          `json:"-"`
}

type Registration struct {
	EventID    string `json:"event_id"`
	TicketID   string `json:"ticket_id"`
	StatusCode int    `json:"status_code"`
	Rejected   bool   `json:"rejected"`
}

// Skip records an event (or event link) that was passed over in a cycle.
type Skip struct {
	EventID string `json:"event_id,omitempty"`
	Link    string `json:"link,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeAborted = "ABORTED"
)

const (
	SkipFetchFailed    = "FETCH_FAILED"
	SkipNotFree        = "NOT_FREE"
	SkipAlreadyClaimed = "ALREADY_CLAIMED"
)
