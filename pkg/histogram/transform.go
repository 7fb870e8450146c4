package histogram

import (
	"math"

	"github.com/matzehuels/wordstack/pkg/errors"
)

// Transform lays words out end-to-end in the order given.
//
// Entry i has Length = words[i].Count and Offset = the sum of the counts of
// words[0..i-1]. The result always has len(words) entries; an empty or nil
// input yields an empty, non-nil slice.
//
// A negative count, or a running total that would overflow int, fails with
// INVALID_INPUT and no entries are returned.
func Transform(words []WordCount) ([]Entry, error) {
	entries := make([]Entry, len(words))
	offset := 0
	for i, w := range words {
		if w.Count < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "negative count %d for word %q", w.Count, w.Word)
		}
		if offset > math.MaxInt-w.Count {
			return nil, errors.New(errors.ErrCodeInvalidInput, "total count overflows at word %q", w.Word)
		}
		entries[i] = Entry{Label: w.Word, Length: w.Count, Offset: offset}
		offset += w.Count
	}
	return entries, nil
}

// Total returns the end of the last entry, which equals the sum of all
// lengths for entries produced by [Transform]. It is 0 for no entries.
func Total(entries []Entry) int {
	if len(entries) == 0 {
		return 0
	}
	return entries[len(entries)-1].End()
}

// MaxLength returns the longest bar length, or 0 for no entries.
func MaxLength(entries []Entry) int {
	m := 0
	for _, e := range entries {
		m = max(m, e.Length)
	}
	return m
}
