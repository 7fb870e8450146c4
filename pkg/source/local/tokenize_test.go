package local

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello", "hello"},
		{"world.", "world"},
		{"wait?!", "wait"},
		{"a,b;c:d", "abcd"},
		{"...", ""},
		{"don't", "don't"},
		{"(paren)", "(paren)"},
		{"ÉCOLE", "école"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCountWords(t *testing.T) {
	counts := map[string]int{"cat": 1}
	n, err := CountWords(strings.NewReader("The cat\n\tsat on the mat... !!\r\nCat."), counts)
	if err != nil {
		t.Fatalf("CountWords() error: %v", err)
	}
	if n != 7 {
		t.Errorf("CountWords() = %d words, want 7", n)
	}
	want := map[string]int{"the": 2, "cat": 3, "sat": 1, "on": 1, "mat": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
}

func TestCountWordsTokenTooLong(t *testing.T) {
	_, err := CountWords(strings.NewReader(strings.Repeat("x", maxTokenBytes+1)), map[string]int{})
	if err == nil {
		t.Error("CountWords() should fail on an oversized token")
	}
}
