// Package httputil provides HTTP helpers shared by the word-count clients.
//
// # Retry
//
// [Retry] re-runs an operation while it fails with a [RetryableError],
// doubling the delay between attempts:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// Errors that are not wrapped in [RetryableError] end the loop at once, so
// callers decide which failures are transient. [RetryableStatus] encodes
// the usual choice for HTTP: 5xx, 408 and 429 are worth another attempt,
// other 4xx responses are not.
//
// # Defaults
//
//   - Attempts: 3
//   - Initial delay: 1 second, doubling after each failure
//
// Cancelling the context stops the wait between attempts and returns
// ctx.Err().
package httputil
