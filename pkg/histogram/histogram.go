package histogram

import (
	"cmp"
	"slices"

	"github.com/matzehuels/wordstack/pkg/errors"
)

// WordCount is a word and the number of times it occurred.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Entry is the rendering geometry of a single word: its bar length and the
// cumulative position at which the bar starts.
type Entry struct {
	Label  string `json:"label"`
	Length int    `json:"length"`
	Offset int    `json:"offset"`
}

// End returns the position at which the bar ends.
func (e Entry) End() int { return e.Offset + e.Length }

// Order selects how word counts are arranged before they are laid out.
type Order string

// Supported orders.
const (
	// OrderInsertion keeps the caller-supplied order.
	OrderInsertion Order = "insertion"
	// OrderAlphabetical sorts by word.
	OrderAlphabetical Order = "alphabetical"
	// OrderCount sorts by descending count, ties broken by word.
	OrderCount Order = "count"
)

// Orders lists every supported order, in the order they are documented.
var Orders = []Order{OrderInsertion, OrderAlphabetical, OrderCount}

// ParseOrder converts a name such as "count" into an [Order].
// Unknown names fail with INVALID_INPUT.
func ParseOrder(s string) (Order, error) {
	o := Order(s)
	if slices.Contains(Orders, o) {
		return o, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput,
		"invalid order: %q (must be one of: insertion, alphabetical, count)", s)
}

// Frequencies is an ordered list of word counts.
//
// Its JSON form is an object mapping words to counts; decoding keeps the
// order in which the words appear in the document.
type Frequencies []WordCount

// FromMap builds Frequencies from an unordered map.
// Because maps have no order of their own, order must be alphabetical or
// count; OrderInsertion fails with INVALID_INPUT.
func FromMap(m map[string]int, order Order) (Frequencies, error) {
	if order == OrderInsertion {
		return nil, errors.New(errors.ErrCodeInvalidInput, "maps have no insertion order; use alphabetical or count")
	}
	if _, err := ParseOrder(string(order)); err != nil {
		return nil, err
	}
	f := make(Frequencies, 0, len(m))
	for w, c := range m {
		f = append(f, WordCount{Word: w, Count: c})
	}
	return f.Sorted(order), nil
}

// Sorted returns a copy of f arranged by order. OrderInsertion returns an
// unmodified copy.
func (f Frequencies) Sorted(order Order) Frequencies {
	out := slices.Clone(f)
	switch order {
	case OrderAlphabetical:
		slices.SortStableFunc(out, func(a, b WordCount) int {
			return cmp.Compare(a.Word, b.Word)
		})
	case OrderCount:
		slices.SortStableFunc(out, byCountDesc)
	}
	return out
}

// Map returns the frequencies as a map.
func (f Frequencies) Map() map[string]int {
	m := make(map[string]int, len(f))
	for _, wc := range f {
		m[wc.Word] = wc.Count
	}
	return m
}

// Total returns the sum of all counts.
func (f Frequencies) Total() int {
	total := 0
	for _, wc := range f {
		total += wc.Count
	}
	return total
}

// Top returns the n most frequent words of words, kept in their original
// relative order. Ties go to the word that appears first. If n <= 0 or n
// covers every word, a copy of words is returned.
func Top(words []WordCount, n int) []WordCount {
	if n <= 0 || n >= len(words) {
		return slices.Clone(words)
	}

	idx := make([]int, len(words))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(words[b].Count, words[a].Count)
	})

	keep := idx[:n]
	slices.Sort(keep)

	out := make([]WordCount, len(keep))
	for i, j := range keep {
		out[i] = words[j]
	}
	return out
}

func byCountDesc(a, b WordCount) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return cmp.Compare(a.Word, b.Word)
}
