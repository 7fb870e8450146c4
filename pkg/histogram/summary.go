package histogram

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of counts in a histogram.
type Summary struct {
	Words    int     `json:"words"`    // Sum of all counts
	Distinct int     `json:"distinct"` // Number of distinct words
	Max      int     `json:"max"`      // Largest count
	Mean     float64 `json:"mean"`     // Mean count per word
	StdDev   float64 `json:"std_dev"`  // Sample standard deviation of counts
}

// Summarize computes a [Summary] over words. The zero Summary is returned
// for no words; StdDev is 0 when there is a single word.
func Summarize(words []WordCount) Summary {
	if len(words) == 0 {
		return Summary{}
	}

	x := make([]float64, len(words))
	total := 0
	for i, w := range words {
		x[i] = float64(w.Count)
		total += w.Count
	}

	s := Summary{
		Words:    total,
		Distinct: len(words),
		Max:      int(floats.Max(x)),
		Mean:     stat.Mean(x, nil),
	}
	if len(x) > 1 {
		s.StdDev = stat.StdDev(x, nil)
	}
	return s
}
