package local

import (
	"bufio"
	"io"
	"strings"
)

// maxTokenBytes bounds a single whitespace-delimited token.
const maxTokenBytes = 1 << 20

var punctuation = strings.NewReplacer(
	".", "",
	"?", "",
	"!", "",
	":", "",
	";", "",
	",", "",
)

// Normalize strips punctuation from a raw token, lowercases and trims it.
// It returns "" for tokens made only of punctuation.
func Normalize(token string) string {
	return strings.TrimSpace(strings.ToLower(punctuation.Replace(token)))
}

// CountWords reads whitespace-separated words from r and adds them to
// counts. It returns the number of words added.
func CountWords(r io.Reader, counts map[string]int) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenBytes)
	sc.Split(bufio.ScanWords)

	n := 0
	for sc.Scan() {
		word := Normalize(sc.Text())
		if word == "" {
			continue
		}
		counts[word]++
		n++
	}
	return n, sc.Err()
}
