package providers

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey signals that no upstream credentials are configured. The client
// stays usable and returns empty results instead of calling out.
var ErrNoAPIKey = errors.New("upstream API key not configured")

// UpstreamError captures a failed call to the upstream provider, whether the
// transport failed outright or the provider answered with a non-2xx status.
type UpstreamError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s returned status %d", e.Provider, e.Endpoint, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s failed: %v", e.Provider, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: %s failed", e.Provider, e.Endpoint)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
