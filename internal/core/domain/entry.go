package domain

import "strings"

// MaxCandidates caps the number of rows a prefix query may return.
// The ranked index is asked for at most this many candidates; the fuzzy
// pass only reorders within that set.
const MaxCandidates = 101

// DictionaryEntry is a single word record from the local dataset.
// Entries are immutable once loaded; the dataset only changes through a
// whole-file replacement.
type DictionaryEntry struct {
	// ID is the stable numeric primary key of the entry.
	ID int64

	// Word is the headword.
	Word string

	// Definition is the entry's definition text.
	Definition string

	// IPA is the primary phonetic transcription.
	IPA string

	// IPAAlt is the alternative phonetic transcription, if any.
	IPAAlt string
}

// NormalizeQuery lower-cases and trims raw user input. An empty result
// means "no active search": it must never reach the index or the cache.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
