// Package fetch retrieves word frequencies for a path.
//
// A [Fetcher] turns a path into an ordered list of word counts. Two
// implementations ship with wordstack: [Client], which asks a word-count
// service over HTTP, and local.Counter in pkg/source/local, which counts
// the files itself.
//
// # Wire format
//
// [Client] sends a single JSON request
//
//	POST /path/words
//	{"1": "/data/books"}
//
// and expects the counts for that path under the same key:
//
//	{"1": {"alice": 12, "rabbit": 4}}
//
// Words keep the order in which the service wrote them. A response without
// the "1" key is treated as an empty result; other keys are ignored.
//
// # Errors
//
// Transport failures and 5xx responses are retried with exponential backoff
// (see [httputil.Retry]); when retries run out the error carries
// NETWORK_ERROR or TIMEOUT. A 404 fails with NOT_FOUND, any other 4xx with
// NETWORK_ERROR. A body that is not valid word-count JSON fails with
// INVALID_INPUT.
package fetch
