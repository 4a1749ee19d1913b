package driving

import (
	"context"

	"github.com/openlexica/lexa-cli/internal/core/domain"
)

// FreshnessOutcome describes what a freshness run did.
type FreshnessOutcome string

const (
	// OutcomeSeeded: first-ever run, record created, no download.
	OutcomeSeeded FreshnessOutcome = "seeded"

	// OutcomeOffline: no connectivity, check deferred to a later run.
	OutcomeOffline FreshnessOutcome = "offline"

	// OutcomeFresh: dataset within the freshness threshold, no action.
	OutcomeFresh FreshnessOutcome = "fresh"

	// OutcomeUpdated: stale dataset downloaded and replaced.
	OutcomeUpdated FreshnessOutcome = "updated"

	// OutcomeFailed: download or replacement failed; prior dataset and
	// record untouched, retried implicitly on the next run.
	OutcomeFailed FreshnessOutcome = "failed"
)

// FreshnessController decides on startup whether the local dataset must
// be replaced by a freshly downloaded one, and performs the replacement.
type FreshnessController interface {
	// Run performs one freshness evaluation. It never returns an error
	// for download or replacement failures (those are silent,
	// best-effort maintenance); the error return covers only failures
	// persisting the freshness record itself.
	Run(ctx context.Context) (FreshnessOutcome, error)

	// State reports the controller's current state machine position.
	State() domain.FreshnessState
}
