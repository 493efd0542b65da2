package utils

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
)

func CreateHttpClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// CreateRetryBackoff mirrors the retry policy used against remote services :
// exponential, capped at maxRetries attempts and bound to the context.
func CreateRetryBackoff(ctx context.Context, maxRetries uint64, initialInterval time.Duration) backoff.BackOff {
	retryBackoff := backoff.NewExponentialBackOff()
	if initialInterval > 0 {
		retryBackoff.InitialInterval = initialInterval
	}
	retryBackoff.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(retryBackoff, maxRetries), ctx)
}

// server-side failures and throttling are worth another attempt
func ShouldRetryStatus(status int) bool {
	return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
}
