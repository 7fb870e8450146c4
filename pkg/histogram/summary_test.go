package histogram

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		words []WordCount
		want  Summary
	}{
		{"empty", nil, Summary{}},
		{"single word", []WordCount{{"cat", 3}}, Summary{Words: 3, Distinct: 1, Max: 3, Mean: 3}},
		{"two words", []WordCount{{"cat", 3}, {"dog", 5}}, Summary{Words: 8, Distinct: 2, Max: 5, Mean: 4, StdDev: math.Sqrt2}},
		{"all zero", []WordCount{{"a", 0}, {"b", 0}}, Summary{Distinct: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.words)
			if got.Words != tt.want.Words || got.Distinct != tt.want.Distinct || got.Max != tt.want.Max {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
			if math.Abs(got.Mean-tt.want.Mean) > 1e-9 {
				t.Errorf("Mean = %v, want %v", got.Mean, tt.want.Mean)
			}
			if math.Abs(got.StdDev-tt.want.StdDev) > 1e-9 {
				t.Errorf("StdDev = %v, want %v", got.StdDev, tt.want.StdDev)
			}
		})
	}
}
