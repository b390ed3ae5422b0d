package utils

import (
	"net/http"
	"time"
)

// NewHTTPClient builds the client used for calls to collaborating services.
// The timeout bounds a single reminder-scheduling call; there are no retries
// at this layer, the circuit breaker in front of it handles repeated failure.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 5 * time.Second,
	}
}
