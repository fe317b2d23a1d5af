package providers

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrProviderUnavailable is returned when a wrapper has no upstream to call.
var ErrProviderUnavailable = errors.New("provider unavailable")

// StatusError captures a non-2xx response from an upstream provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected upstream response"
	}
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsForbidden reports whether the upstream denied access, which the YouTube Data API uses for
// disabled APIs and exhausted quota.
func IsForbidden(err error) bool {
	statusErr, ok := AsStatusError(err)
	return ok && statusErr.StatusCode == http.StatusForbidden
}
