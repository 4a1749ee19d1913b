package sqlite

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlexica/lexa-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedEntries(t *testing.T, store *Store, words ...string) {
	t.Helper()

	entries := make([]domain.DictionaryEntry, 0, len(words))
	for _, w := range words {
		entries = append(entries, domain.DictionaryEntry{
			Word:       w,
			Definition: "definition of " + w,
		})
	}
	require.NoError(t, store.InsertEntries(context.Background(), entries))
}

// datasetBytes builds a complete dictionary database file in a scratch
// directory and returns its raw bytes, for exercising ReplaceAll.
func datasetBytes(t *testing.T, words ...string) []byte {
	t.Helper()

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	seedEntries(t, store, words...)
	require.NoError(t, store.Close())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	return data
}

func TestStore_QueryPrefixMatchesAndRanks(t *testing.T) {
	store := newTestStore(t)
	seedEntries(t, store, "cat", "catalog", "scatter")

	results, err := store.QueryPrefix(context.Background(), "cat")

	require.NoError(t, err)
	words := make([]string, 0, len(results))
	for _, e := range results {
		words = append(words, e.Word)
	}
	assert.Contains(t, words, "cat")
	assert.Contains(t, words, "catalog")
	// FTS prefix match is token-anchored, so "scatter" stays out.
	assert.NotContains(t, words, "scatter")
}

func TestStore_QueryPrefixEmptyResult(t *testing.T) {
	store := newTestStore(t)
	seedEntries(t, store, "cat")

	results, err := store.QueryPrefix(context.Background(), "zebra")

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestStore_QueryPrefixRejectsEmptyQuery(t *testing.T) {
	store := newTestStore(t)

	_, err := store.QueryPrefix(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_QueryPrefixIllegalSyntaxWrapsErrQuery(t *testing.T) {
	store := newTestStore(t)
	seedEntries(t, store, "cat")

	// An unbalanced quote is invalid FTS5 syntax.
	_, err := store.QueryPrefix(context.Background(), `"cat`)

	assert.ErrorIs(t, err, domain.ErrQuery)
}

func TestStore_FetchRandom(t *testing.T) {
	store := newTestStore(t)
	seedEntries(t, store, "cat", "dog")

	entry, err := store.FetchRandom(context.Background())

	require.NoError(t, err)
	assert.Contains(t, []string{"cat", "dog"}, entry.Word)
	assert.NotEmpty(t, entry.Definition)
}

func TestStore_FetchRandomEmptyDataset(t *testing.T) {
	store := newTestStore(t)

	_, err := store.FetchRandom(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Count(t *testing.T) {
	store := newTestStore(t)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	seedEntries(t, store, "cat", "dog", "bird")

	count, err = store.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestStore_ReplaceAllSwapsDataset(t *testing.T) {
	store := newTestStore(t)
	seedEntries(t, store, "old")

	err := store.ReplaceAll(context.Background(), datasetBytes(t, "new", "newer"))

	require.NoError(t, err)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	results, err := store.QueryPrefix(context.Background(), "new")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = store.QueryPrefix(context.Background(), "old")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestStore_ReplaceAllRejectsCorruptPayload(t *testing.T) {
	store := newTestStore(t)
	seedEntries(t, store, "cat")

	err := store.ReplaceAll(context.Background(), []byte("not a database"))

	require.ErrorIs(t, err, domain.ErrReplace)

	// The prior dataset is still live and queryable.
	results, qErr := store.QueryPrefix(context.Background(), "cat")
	require.NoError(t, qErr)
	assert.Len(t, results, 1)
}

func TestStore_ReplaceAllRejectsEmptyDataset(t *testing.T) {
	store := newTestStore(t)
	seedEntries(t, store, "cat")

	// A valid database with zero entries must not replace the live one.
	dir := t.TempDir()
	empty, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, empty.Close())
	data, err := os.ReadFile(empty.Path())
	require.NoError(t, err)

	err = store.ReplaceAll(context.Background(), data)

	require.ErrorIs(t, err, domain.ErrReplace)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
