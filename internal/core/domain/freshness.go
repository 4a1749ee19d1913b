package domain

import "time"

// FreshnessMaxAge is how old the local dataset may grow before it is
// considered stale and eligible for replacement.
const FreshnessMaxAge = 7 * 24 * time.Hour

// FreshnessState is the dataset freshness state machine.
//
// NeverChecked -> Seeded -> Checking -> {UpToDate, Updating} -> UpToDate
type FreshnessState string

const (
	// FreshnessNeverChecked means no freshness record has been persisted.
	FreshnessNeverChecked FreshnessState = "never_checked"

	// FreshnessSeeded means the record was just created on first run.
	// The bundled dataset is trusted as current; no download occurs.
	FreshnessSeeded FreshnessState = "seeded"

	// FreshnessChecking means the controller is evaluating dataset age.
	FreshnessChecking FreshnessState = "checking"

	// FreshnessUpdating means a replacement download is in progress.
	FreshnessUpdating FreshnessState = "updating"

	// FreshnessUpToDate is the terminal state of every run.
	FreshnessUpToDate FreshnessState = "up_to_date"
)

// FreshnessRecord is the durably persisted dataset-fetch bookkeeping.
// It is created (seeded to now) on first-ever run and updated only after
// a successful dataset replacement.
type FreshnessRecord struct {
	// LastFetchedAtMs is the epoch time in milliseconds of the last
	// successful dataset fetch. Zero means the record is absent.
	LastFetchedAtMs int64
}

// Age returns how old the record is relative to now.
func (r FreshnessRecord) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(r.LastFetchedAtMs))
}

// Stale reports whether the dataset is older than the freshness threshold.
func (r FreshnessRecord) Stale(now time.Time) bool {
	return r.Age(now) > FreshnessMaxAge
}
