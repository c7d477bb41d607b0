package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IngestOutcome describes how an ingestion run ended.
type IngestOutcome string

const (
	// IngestOutcomeNoMedia means the library returned an empty page.
	IngestOutcomeNoMedia IngestOutcome = "no_media"
	// IngestOutcomeReachedWatermark means a previously ingested photo was reached.
	IngestOutcomeReachedWatermark IngestOutcome = "reached_watermark"
	// IngestOutcomeProcessed means the page budget or the library was exhausted.
	IngestOutcomeProcessed IngestOutcome = "processed"
)

// Message returns the client facing description of the outcome.
func (o IngestOutcome) Message() string {
	if o == IngestOutcomeNoMedia {
		return "No media items found"
	}
	return "Successfully processed photos"
}

// IngestResult summarizes one ingestion run.
type IngestResult struct {
	Outcome     IngestOutcome
	Accepted    int
	Rejected    int
	Skipped     int
	Pages       int
	StatusReady bool
}

// IngestRunState is the lifecycle state of a journaled run.
type IngestRunState string

const (
	IngestRunRunning   IngestRunState = "running"
	IngestRunCompleted IngestRunState = "completed"
	IngestRunFailed    IngestRunState = "failed"
)

// IngestRunStore journals ingestion runs.
type IngestRunStore interface {
	Start(ctx context.Context, run IngestRun) error
	Finish(ctx context.Context, run IngestRun) error
	ListByUser(ctx context.Context, userID string, limit int) ([]IngestRun, error)
}

// IngestRun is a journal entry of one ingestion invocation.
type IngestRun struct {
	ID         uuid.UUID
	UserID     string
	State      IngestRunState
	Outcome    IngestOutcome
	Accepted   int
	Error      string
	StartedAt  time.Time
	FinishedAt *time.Time
}
