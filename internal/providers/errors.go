package providers

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound reports that the upstream has no such resource.
	ErrNotFound = errors.New("resource not found upstream")
	// ErrProviderUnavailable reports that a provider is not configured or cannot be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// UpstreamError captures a non-success response from an upstream provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected upstream response"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

// Is lets errors.Is(err, ErrNotFound) match upstream 404s.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
