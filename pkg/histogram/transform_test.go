package histogram

import (
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/matzehuels/wordstack/pkg/errors"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		words []WordCount
		want  []Entry
	}{
		{
			name:  "nil input",
			words: nil,
			want:  []Entry{},
		},
		{
			name:  "empty input",
			words: []WordCount{},
			want:  []Entry{},
		},
		{
			name:  "cat then dog",
			words: []WordCount{{"cat", 3}, {"dog", 5}},
			want:  []Entry{{"cat", 3, 0}, {"dog", 5, 3}},
		},
		{
			name:  "dog then cat",
			words: []WordCount{{"dog", 5}, {"cat", 3}},
			want:  []Entry{{"dog", 5, 0}, {"cat", 3, 5}},
		},
		{
			name:  "zero counts",
			words: []WordCount{{"a", 0}, {"b", 2}, {"c", 0}, {"d", 1}},
			want:  []Entry{{"a", 0, 0}, {"b", 2, 0}, {"c", 0, 2}, {"d", 1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform(tt.words)
			if err != nil {
				t.Fatalf("Transform() error: %v", err)
			}
			if got == nil {
				t.Fatal("Transform() returned nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Transform() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformInvalid(t *testing.T) {
	tests := []struct {
		name  string
		words []WordCount
	}{
		{"single negative", []WordCount{{"cat", -1}}},
		{"negative after valid", []WordCount{{"cat", 3}, {"dog", -5}}},
		{"overflow", []WordCount{{"a", math.MaxInt}, {"b", 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform(tt.words)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("Transform() error = %v, want INVALID_INPUT", err)
			}
			if got != nil {
				t.Errorf("Transform() returned partial output %v", got)
			}
		})
	}
}

func TestTransformProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for trial := range 200 {
		n := r.IntN(40)
		words := make([]WordCount, n)
		sum := 0
		for i := range words {
			c := r.IntN(1000)
			words[i] = WordCount{Word: string(rune('a' + i%26)), Count: c}
			sum += c
		}

		entries, err := Transform(words)
		if err != nil {
			t.Fatalf("trial %d: Transform() error: %v", trial, err)
		}
		if len(entries) != n {
			t.Fatalf("trial %d: len = %d, want %d", trial, len(entries), n)
		}

		lengths := 0
		for i, e := range entries {
			lengths += e.Length
			if e.Label != words[i].Word || e.Length != words[i].Count {
				t.Fatalf("trial %d: entry %d = %v, want label %q length %d", trial, i, e, words[i].Word, words[i].Count)
			}
			if i == 0 && e.Offset != 0 {
				t.Fatalf("trial %d: first offset = %d, want 0", trial, e.Offset)
			}
			if i > 0 && e.Offset != entries[i-1].Offset+entries[i-1].Length {
				t.Fatalf("trial %d: offset[%d] = %d, want %d", trial, i, e.Offset, entries[i-1].Offset+entries[i-1].Length)
			}
			if i > 0 && e.Offset < entries[i-1].Offset {
				t.Fatalf("trial %d: offsets decrease at %d", trial, i)
			}
		}
		if lengths != sum {
			t.Fatalf("trial %d: sum(length) = %d, want %d", trial, lengths, sum)
		}
		if Total(entries) != sum {
			t.Fatalf("trial %d: Total() = %d, want %d", trial, Total(entries), sum)
		}
	}
}

func TestTransformIdempotent(t *testing.T) {
	words := []WordCount{{"the", 12}, {"cat", 3}, {"sat", 1}}

	first, err := Transform(words)
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}
	second, err := Transform(words)
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Transform() not idempotent: %v vs %v", first, second)
	}
	if &first[0] == &second[0] {
		t.Error("Transform() should return a fresh slice on every call")
	}
}

func TestTransformDoesNotModifyInput(t *testing.T) {
	words := []WordCount{{"b", 2}, {"a", 1}}
	orig := append([]WordCount(nil), words...)

	if _, err := Transform(words); err != nil {
		t.Fatalf("Transform() error: %v", err)
	}
	if !reflect.DeepEqual(words, orig) {
		t.Errorf("input modified: %v, want %v", words, orig)
	}
}

func TestTotalAndMaxLength(t *testing.T) {
	if Total(nil) != 0 {
		t.Errorf("Total(nil) = %d, want 0", Total(nil))
	}
	if MaxLength(nil) != 0 {
		t.Errorf("MaxLength(nil) = %d, want 0", MaxLength(nil))
	}

	entries := []Entry{{"cat", 3, 0}, {"dog", 5, 3}, {"eel", 0, 8}}
	if got := Total(entries); got != 8 {
		t.Errorf("Total() = %d, want 8", got)
	}
	if got := MaxLength(entries); got != 5 {
		t.Errorf("MaxLength() = %d, want 5", got)
	}
	if got := entries[1].End(); got != 8 {
		t.Errorf("End() = %d, want 8", got)
	}
}
