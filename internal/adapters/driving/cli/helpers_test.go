package cli

import (
	"context"

	"github.com/openlexica/lexa-cli/internal/core/domain"
	"github.com/openlexica/lexa-cli/internal/core/ports/driving"
)

// stubSearcher implements driving.Searcher for command tests.
type stubSearcher struct {
	entries []domain.DictionaryEntry
	random  *domain.DictionaryEntry
	err     error
}

var _ driving.Searcher = (*stubSearcher)(nil)

func (s *stubSearcher) Search(_ context.Context, _ string) ([]domain.DictionaryEntry, error) {
	return s.entries, s.err
}

func (s *stubSearcher) Random(_ context.Context) (*domain.DictionaryEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.random == nil {
		return nil, domain.ErrNotFound
	}
	return s.random, nil
}

// stubFreshness implements driving.FreshnessController.
type stubFreshness struct {
	outcome driving.FreshnessOutcome
	err     error
	runs    int
}

var _ driving.FreshnessController = (*stubFreshness)(nil)

func (s *stubFreshness) Run(_ context.Context) (driving.FreshnessOutcome, error) {
	s.runs++
	return s.outcome, s.err
}

func (s *stubFreshness) State() domain.FreshnessState {
	return domain.FreshnessUpToDate
}

// stubImporter implements DatasetImporter.
type stubImporter struct {
	inserted []domain.DictionaryEntry
	insErr   error
}

var _ DatasetImporter = (*stubImporter)(nil)

func (s *stubImporter) InsertEntries(_ context.Context, entries []domain.DictionaryEntry) error {
	if s.insErr != nil {
		return s.insErr
	}
	s.inserted = append(s.inserted, entries...)
	return nil
}

func (s *stubImporter) Count(_ context.Context) (int64, error) {
	return int64(len(s.inserted)), nil
}

// setupTestServices installs stubs and returns a cleanup restoring the
// previous wiring.
func setupTestServices(s Services) func() {
	prevSearch := searchService
	prevFresh := freshnessService
	prevImport := datasetImporter

	SetServices(s)

	return func() {
		searchService = prevSearch
		freshnessService = prevFresh
		datasetImporter = prevImport
	}
}
