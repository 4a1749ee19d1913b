package driven

import (
	"context"

	"github.com/openlexica/lexa-cli/internal/core/domain"
)

// DictionaryStore provides read access to the local word dataset and the
// single write operation: atomic whole-dataset replacement.
//
// The backing data is read-shared by all query callers and exclusively
// written by ReplaceAll; readers must never observe a half-written dataset.
type DictionaryStore interface {
	// QueryPrefix executes a ranked prefix query against the full-text
	// index. The query must be non-empty and normalized; a wildcard
	// suffix is appended before it reaches the index. Returns up to
	// domain.MaxCandidates rows in the index's own relevance order,
	// best first. Index syntax or execution errors wrap domain.ErrQuery
	// and propagate to the caller.
	QueryPrefix(ctx context.Context, query string) ([]domain.DictionaryEntry, error)

	// FetchRandom returns one uniformly-at-random entry from the
	// dataset, or domain.ErrNotFound when the dataset is empty.
	FetchRandom(ctx context.Context) (*domain.DictionaryEntry, error)

	// ReplaceAll atomically swaps the entire backing dataset for the
	// given bytes. The new dataset is written to a temporary location,
	// verified, and committed with a single atomic rename. On failure
	// it wraps domain.ErrReplace and leaves the prior dataset intact.
	ReplaceAll(ctx context.Context, data []byte) error

	// Count returns the number of entries in the dataset.
	Count(ctx context.Context) (int64, error)

	// Close releases the underlying database handle.
	Close() error
}
