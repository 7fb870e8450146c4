// Package histogram turns word frequencies into bar-chart layout entries.
//
// # Overview
//
// A word-count service answers with a mapping from word to occurrence count.
// Before anything can be drawn, those counts have to be placed end-to-end
// along one axis: every bar starts where the previous one ended. This package
// owns that transformation and the data model around it:
//
//   - [WordCount]: a word and its count
//   - [Frequencies]: an ordered list of word counts with order-preserving JSON
//   - [Entry]: a label, a bar length and its cumulative offset
//   - [Transform]: the pure function from word counts to entries
//
// # Ordering
//
// The vertical order of the bars is an explicit input, never a side effect of
// map iteration. [Transform] keeps the order it is given. Callers pick one of:
//
//   - [OrderInsertion]: the order of the source document, as decoded by
//     [Frequencies.UnmarshalJSON]
//   - [OrderAlphabetical]: sorted by word
//   - [OrderCount]: most frequent first, ties broken by word
//
// Go maps carry no order, so [FromMap] refuses [OrderInsertion].
//
// # Usage
//
//	var freqs histogram.Frequencies
//	if err := json.Unmarshal(body, &freqs); err != nil {
//	    return err
//	}
//	entries, err := histogram.Transform(freqs.Sorted(histogram.OrderCount))
//	if err != nil {
//	    return err // INVALID_INPUT on negative counts
//	}
//
// # Invariants
//
// For every result of [Transform]:
//
//	entries[0].Offset == 0
//	entries[i].Offset == entries[i-1].Offset + entries[i-1].Length
//	Total(entries) == sum of all input counts
//
// The package holds no state; every function is safe for concurrent use.
package histogram
