package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openlexica/lexa-cli/internal/core/domain"
	"github.com/openlexica/lexa-cli/internal/core/ports/driven"
	"github.com/openlexica/lexa-cli/internal/core/ports/driving"
	"github.com/openlexica/lexa-cli/internal/logger"
)

// KeyLastFetchedAtMs is the durable key holding the epoch milliseconds of
// the last successful dataset fetch.
const KeyLastFetchedAtMs = "dataset.last_fetched_at_ms"

// Ensure FreshnessService implements the interface.
var _ driving.FreshnessController = (*FreshnessService)(nil)

// FreshnessService evaluates dataset age on startup and replaces the
// local dataset when it is older than the freshness threshold.
//
// Failures downloading or committing a replacement are recoverable and
// silent: the run reports OutcomeFailed, the prior dataset and record are
// untouched, and the next run retries implicitly.
type FreshnessService struct {
	kv       driven.KVStore
	net      driven.ConnectivityChecker
	fetcher  driven.DatasetFetcher
	store    driven.DictionaryStore
	onUpdate func()

	// now is injectable for tests.
	now func() time.Time

	mu    sync.Mutex
	state domain.FreshnessState
}

// NewFreshnessService creates a freshness controller. onUpdate is invoked
// exactly once after a successful replacement; consumers use it to
// invalidate the result cache and re-render. It may be nil.
func NewFreshnessService(
	kv driven.KVStore,
	net driven.ConnectivityChecker,
	fetcher driven.DatasetFetcher,
	store driven.DictionaryStore,
	onUpdate func(),
) *FreshnessService {
	return &FreshnessService{
		kv:       kv,
		net:      net,
		fetcher:  fetcher,
		store:    store,
		onUpdate: onUpdate,
		now:      time.Now,
		state:    domain.FreshnessNeverChecked,
	}
}

// State reports the controller's current state machine position.
func (s *FreshnessService) State() domain.FreshnessState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *FreshnessService) setState(state domain.FreshnessState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Run performs one freshness evaluation.
func (s *FreshnessService) Run(ctx context.Context) (driving.FreshnessOutcome, error) {
	logger.Section("Dataset Freshness")

	ms, ok := s.kv.GetInt64(KeyLastFetchedAtMs)
	if !ok || ms == 0 {
		// First-ever run: trust the bundled dataset and seed the record.
		now := s.now()
		s.setState(domain.FreshnessSeeded)
		if err := s.kv.SetInt64(KeyLastFetchedAtMs, now.UnixMilli()); err != nil {
			s.setState(domain.FreshnessUpToDate)
			return driving.OutcomeSeeded, fmt.Errorf("seeding freshness record: %w", err)
		}
		logger.Debug("Freshness record seeded at %d", now.UnixMilli())
		s.setState(domain.FreshnessUpToDate)
		return driving.OutcomeSeeded, nil
	}

	s.setState(domain.FreshnessChecking)
	record := domain.FreshnessRecord{LastFetchedAtMs: ms}
	now := s.now()
	logger.Debug("Dataset age: %s", record.Age(now))

	if !s.net.Online(ctx) {
		// Deferred, not failed: the record stays untouched and the
		// check happens again on a later run.
		logger.Debug("Offline, skipping freshness check")
		s.setState(domain.FreshnessUpToDate)
		return driving.OutcomeOffline, nil
	}

	if !record.Stale(now) {
		s.setState(domain.FreshnessUpToDate)
		return driving.OutcomeFresh, nil
	}

	s.setState(domain.FreshnessUpdating)
	logger.Info("Dataset stale, downloading replacement")

	data, err := s.fetcher.Fetch(ctx)
	if err != nil {
		logger.Warn("Dataset download failed: %v", err)
		s.setState(domain.FreshnessUpToDate)
		return driving.OutcomeFailed, nil
	}

	if err := s.store.ReplaceAll(ctx, data); err != nil {
		logger.Warn("Dataset replacement failed: %v", err)
		s.setState(domain.FreshnessUpToDate)
		return driving.OutcomeFailed, nil
	}

	if err := s.kv.SetInt64(KeyLastFetchedAtMs, s.now().UnixMilli()); err != nil {
		// The dataset was replaced; still notify consumers before
		// reporting the record-persistence failure.
		s.notify()
		s.setState(domain.FreshnessUpToDate)
		return driving.OutcomeUpdated, fmt.Errorf("updating freshness record: %w", err)
	}

	s.notify()
	s.setState(domain.FreshnessUpToDate)
	logger.Info("Dataset replaced")
	return driving.OutcomeUpdated, nil
}

func (s *FreshnessService) notify() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
