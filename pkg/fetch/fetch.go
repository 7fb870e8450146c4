package fetch

import (
	"context"
	"encoding/json"

	"github.com/matzehuels/wordstack/pkg/histogram"
)

// Fetcher retrieves the word frequencies for a path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (histogram.Frequencies, error)
}

// FetcherFunc adapts an ordinary function to the [Fetcher] interface.
type FetcherFunc func(ctx context.Context, path string) (histogram.Frequencies, error)

// Fetch calls f(ctx, path).
func (f FetcherFunc) Fetch(ctx context.Context, path string) (histogram.Frequencies, error) {
	return f(ctx, path)
}

// RequestKey is the envelope key used for both the request path and the
// returned counts.
const RequestKey = "1"

// Request is the body sent to the word-count service.
type Request map[string]string

// NewRequest builds the request envelope for path.
func NewRequest(path string) Request {
	return Request{RequestKey: path}
}

// Response is the body returned by the word-count service. Only the
// [RequestKey] entry is decoded; other keys are ignored.
type Response map[string]json.RawMessage

// Words decodes the counts for the request key. A missing or null entry
// yields an empty list.
func (r Response) Words() (histogram.Frequencies, error) {
	raw, ok := r[RequestKey]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return histogram.Frequencies{}, nil
	}
	var words histogram.Frequencies
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, err
	}
	if words == nil {
		words = histogram.Frequencies{}
	}
	return words, nil
}
