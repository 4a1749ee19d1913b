package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlexica/lexa-cli/internal/core/domain"
)

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	store := &mockDictionaryStore{}
	svc := NewSearchService(store)

	for _, raw := range []string{"", "   ", "\t\n"} {
		results, err := svc.Search(context.Background(), raw)

		require.NoError(t, err)
		assert.Empty(t, results)
	}

	// The index is never touched for an empty query.
	assert.Empty(t, store.queries())
}

func TestSearchService_Search_NormalizesQuery(t *testing.T) {
	store := &mockDictionaryStore{}
	svc := NewSearchService(store)

	_, err := svc.Search(context.Background(), "  CaT ")

	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, store.queries())
}

func TestSearchService_Search_FuzzyFirstThenPrefixOrder(t *testing.T) {
	// The prefix query finds "cat" and "catalog" but not "scatter";
	// the fuzzy pass keeps the closer match first.
	store := &mockDictionaryStore{
		entries: []domain.DictionaryEntry{
			{ID: 1, Word: "cat", Definition: "a small domesticated felid"},
			{ID: 2, Word: "catalog", Definition: "a systematic list"},
		},
	}
	svc := NewSearchService(store)

	results, err := svc.Search(context.Background(), "cat")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(1), results[0].ID)
	assert.Equal(t, int64(2), results[1].ID)
}

func TestSearchService_Search_QueryErrorPropagates(t *testing.T) {
	store := &mockDictionaryStore{
		queryErr: fmt.Errorf("near \"*\": %w", domain.ErrQuery),
	}
	svc := NewSearchService(store)

	results, err := svc.Search(context.Background(), "cat\"")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQuery)
	assert.Nil(t, results)
}

func TestSearchService_Random(t *testing.T) {
	store := &mockDictionaryStore{
		entries: []domain.DictionaryEntry{{ID: 7, Word: "serendipity"}},
	}
	svc := NewSearchService(store)

	entry, err := svc.Random(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), entry.ID)
	assert.Equal(t, 1, store.randomCalls)
}

func TestSearchService_Random_EmptyDataset(t *testing.T) {
	store := &mockDictionaryStore{}
	svc := NewSearchService(store)

	_, err := svc.Random(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ==================== Merge Tests ====================

func TestMergeFuzzy_EmptyCandidates(t *testing.T) {
	result := mergeFuzzy("cat", nil)
	assert.Empty(t, result)
}

func TestMergeFuzzy_NoFuzzyMatchKeepsOriginalOrder(t *testing.T) {
	candidates := []domain.DictionaryEntry{
		{ID: 1, Word: "alpha"},
		{ID: 2, Word: "beta"},
		{ID: 3, Word: "gamma"},
	}

	result := mergeFuzzy("zqx", candidates)

	assert.Equal(t, candidates, result)
}

func TestMergeFuzzy_NoDuplicateIDs(t *testing.T) {
	candidates := []domain.DictionaryEntry{
		{ID: 1, Word: "cat"},
		{ID: 2, Word: "catalog"},
		{ID: 1, Word: "cat"}, // duplicate row from the index
		{ID: 3, Word: "cast"},
	}

	result := mergeFuzzy("cat", candidates)

	seen := make(map[int64]bool)
	for _, e := range result {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
}

func TestMergeFuzzy_PermutationOfCandidates(t *testing.T) {
	candidates := []domain.DictionaryEntry{
		{ID: 10, Word: "light"},
		{ID: 11, Word: "lighthouse"},
		{ID: 12, Word: "lightning"},
		{ID: 13, Word: "delight"},
	}

	result := mergeFuzzy("light", candidates)

	// Re-ordered, never dropped: the merge is a permutation of the
	// candidate ids.
	require.Len(t, result, len(candidates))
	want := make(map[int64]bool)
	for _, e := range candidates {
		want[e.ID] = true
	}
	for _, e := range result {
		assert.True(t, want[e.ID], "unexpected id %d", e.ID)
	}
}

func TestMergeFuzzy_UnmatchedCandidatesFollowInOriginalOrder(t *testing.T) {
	// "do" fuzzy-matches "dog" and "dot" but not "cab" or "car"; the
	// unmatched pair must trail in its original candidate order.
	candidates := []domain.DictionaryEntry{
		{ID: 1, Word: "cab"},
		{ID: 2, Word: "dog"},
		{ID: 3, Word: "car"},
		{ID: 4, Word: "dot"},
	}

	result := mergeFuzzy("do", candidates)

	require.Len(t, result, 4)
	var tail []int64
	for _, e := range result {
		if e.Word == "cab" || e.Word == "car" {
			tail = append(tail, e.ID)
		}
	}
	assert.Equal(t, []int64{1, 3}, tail)

	// The fuzzy subsequence leads the merged result.
	assert.Contains(t, []string{"dog", "dot"}, result[0].Word)
	assert.Contains(t, []string{"dog", "dot"}, result[1].Word)
}

func TestSearchService_Search_WrapsStoreError(t *testing.T) {
	store := &mockDictionaryStore{queryErr: errors.New("disk gone")}
	svc := NewSearchService(store)

	_, err := svc.Search(context.Background(), "cat")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefix query")
}
