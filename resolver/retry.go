// Package resolver implements the identity collaborators used during
// extraction: ROR organisation names, ORCID person names and a SQLite
// cache of ROR resolutions.
//
// Every resolver reports failure as a missing value, never as an error.
// Extraction degrades to the text written in the XML instead.
package resolver

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay is the first backoff delay. Tests override it.
var RetryBaseDelay = 500 * time.Millisecond

const defaultMaxRetries = 2

// doWithRetry executes req and retries on 429 and 503 with exponential
// backoff. When maxRetries is 0 the default is used. After exhausting
// retries the last response is returned so the caller can inspect it. A
// context cancelled during a backoff wait returns ctx.Err().
func doWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
			return resp, nil
		}

		if attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		slog.Debug("upstream busy, retrying", "url", req.URL.String(), "status", resp.StatusCode, "backoff", backoff, "attempt", attempt+1)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// newClient returns an HTTP client with the given timeout, or a 10 second
// one when timeout is zero.
func newClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
