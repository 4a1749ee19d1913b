package driving

import (
	"context"

	"github.com/openlexica/lexa-cli/internal/core/domain"
)

// Searcher provides ranked dictionary lookup to external actors.
type Searcher interface {
	// Search normalizes the raw input, runs the ranked prefix query and
	// re-ranks the candidates with a fuzzy pass. An empty (or
	// whitespace-only) query returns an empty result without touching
	// the index; callers fall back to Random for the idle view.
	Search(ctx context.Context, raw string) ([]domain.DictionaryEntry, error)

	// Random returns one random entry, the "discover a word" fallback
	// shown when no query is active.
	Random(ctx context.Context) (*domain.DictionaryEntry, error)
}
