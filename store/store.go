// Package store implements the remote news backends behind the
// news.Backend capability: a Discord channel message store and a GitHub
// raw-file host.
package store

import (
	"io"
	"net/http"
	"time"

	"github.com/XbxAtWork/seamhanian-archives101/news"
)

const (
	// MaxListItems caps how many recent entries a backend fetch returns.
	MaxListItems = 50

	// RequestTimeout bounds every backend call. On expiry the call fails
	// like any other transport error; there are no retries.
	RequestTimeout = 10 * time.Second
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: RequestTimeout}
}

// checkStatus drains a failed response into a NetworkError so callers can
// render it as a status line.
func checkStatus(op string, resp *http.Response, ok ...int) error {
	for _, code := range ok {
		if resp.StatusCode == code {
			return nil
		}
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	return &news.NetworkError{Op: op, Status: resp.StatusCode}
}

func netErr(op string, err error) error {
	return &news.NetworkError{Op: op, Err: err}
}
