package services

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/openlexica/lexa-cli/internal/core/domain"
	"github.com/openlexica/lexa-cli/internal/core/ports/driven"
	"github.com/openlexica/lexa-cli/internal/core/ports/driving"
	"github.com/openlexica/lexa-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.Searcher = (*SearchService)(nil)

// SearchService combines the ranked prefix query with a fuzzy re-ranking
// pass over the candidate set.
type SearchService struct {
	store driven.DictionaryStore
}

// NewSearchService creates a new search service.
func NewSearchService(store driven.DictionaryStore) *SearchService {
	return &SearchService{store: store}
}

// Search performs a ranked prefix lookup re-ranked by fuzzy similarity.
func (s *SearchService) Search(ctx context.Context, raw string) ([]domain.DictionaryEntry, error) {
	query := domain.NormalizeQuery(raw)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.DictionaryEntry{}, nil
	}

	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	candidates, err := s.store.QueryPrefix(ctx, query)
	if err != nil {
		logger.Warn("Prefix query failed: %v", err)
		return nil, fmt.Errorf("prefix query: %w", err)
	}
	logger.Debug("Prefix candidates: %d", len(candidates))

	results := mergeFuzzy(query, candidates)
	logger.Info("Final results: %d", len(results))

	return results, nil
}

// Random returns one random entry, the idle "discover a word" view.
func (s *SearchService) Random(ctx context.Context) (*domain.DictionaryEntry, error) {
	entry, err := s.store.FetchRandom(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch random: %w", err)
	}
	return entry, nil
}

// entrySource adapts a candidate set to fuzzy.Source so the fuzzy pass
// searches only within the prefix query's candidates.
type entrySource []domain.DictionaryEntry

func (s entrySource) String(i int) string { return s[i].Word }
func (s entrySource) Len() int            { return len(s) }

// Merges the fuzzy-ranked subsequence with the remaining candidates.
//
// The fuzzy matches come first in the scoring primitive's own order; every
// candidate the fuzzy pass skipped follows in its original index-rank
// position. IDs are deduplicated so the prefix results act as a
// complete-coverage fallback: candidates are only re-ordered, never dropped.
func mergeFuzzy(query string, candidates []domain.DictionaryEntry) []domain.DictionaryEntry {
	if len(candidates) == 0 {
		return []domain.DictionaryEntry{}
	}

	matches := fuzzy.FindFrom(query, entrySource(candidates))

	seen := make(map[int64]bool, len(candidates))
	merged := make([]domain.DictionaryEntry, 0, len(candidates))

	for _, m := range matches {
		entry := candidates[m.Index]
		if seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true
		merged = append(merged, entry)
	}

	for _, entry := range candidates {
		if seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true
		merged = append(merged, entry)
	}

	return merged
}
