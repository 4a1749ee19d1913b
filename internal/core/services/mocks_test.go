package services

import (
	"context"
	"sync"

	"github.com/openlexica/lexa-cli/internal/core/domain"
	"github.com/openlexica/lexa-cli/internal/core/ports/driven"
)

// --- Mock implementations shared by the service tests ---

// mockDictionaryStore implements driven.DictionaryStore for testing.
type mockDictionaryStore struct {
	mu sync.Mutex

	entries    []domain.DictionaryEntry
	queryErr   error
	randomErr  error
	replaceErr error

	queryCalls   []string
	randomCalls  int
	replacedWith [][]byte
}

var _ driven.DictionaryStore = (*mockDictionaryStore)(nil)

func (m *mockDictionaryStore) QueryPrefix(_ context.Context, query string) ([]domain.DictionaryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryCalls = append(m.queryCalls, query)
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	out := make([]domain.DictionaryEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *mockDictionaryStore) FetchRandom(_ context.Context) (*domain.DictionaryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.randomCalls++
	if m.randomErr != nil {
		return nil, m.randomErr
	}
	if len(m.entries) == 0 {
		return nil, domain.ErrNotFound
	}
	entry := m.entries[0]
	return &entry, nil
}

func (m *mockDictionaryStore) ReplaceAll(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replacedWith = append(m.replacedWith, data)
	return nil
}

func (m *mockDictionaryStore) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.entries)), nil
}

func (m *mockDictionaryStore) Close() error { return nil }

func (m *mockDictionaryStore) queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queryCalls...)
}

func (m *mockDictionaryStore) replacements() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.replacedWith)
}

// mockKVStore implements driven.KVStore for testing.
type mockKVStore struct {
	mu      sync.Mutex
	ints    map[string]int64
	strings map[string]string
	setErr  error
}

var _ driven.KVStore = (*mockKVStore)(nil)

func newMockKVStore() *mockKVStore {
	return &mockKVStore{
		ints:    make(map[string]int64),
		strings: make(map[string]string),
	}
}

func (m *mockKVStore) GetInt64(key string) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.ints[key]
	return v, ok
}

func (m *mockKVStore) SetInt64(key string, value int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.ints[key] = value
	return nil
}

func (m *mockKVStore) GetString(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.strings[key]
}

func (m *mockKVStore) SetString(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.strings[key] = value
	return nil
}

// mockFetcher implements driven.DatasetFetcher for testing.
type mockFetcher struct {
	mu    sync.Mutex
	data  []byte
	err   error
	calls int
}

var _ driven.DatasetFetcher = (*mockFetcher)(nil)

func (m *mockFetcher) Fetch(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

func (m *mockFetcher) fetchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockConnectivity implements driven.ConnectivityChecker for testing.
type mockConnectivity struct {
	online bool
	calls  int
}

var _ driven.ConnectivityChecker = (*mockConnectivity)(nil)

func (m *mockConnectivity) Online(_ context.Context) bool {
	m.calls++
	return m.online
}
