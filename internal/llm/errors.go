package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies adapter failures so the orchestration layer can map
// each to a user-visible message without string matching.
type ErrorKind string

const (
	// KindAuth means the backend rejected the credential (401-class).
	KindAuth ErrorKind = "auth"
	// KindRateLimited means the backend signalled throttling (429-class).
	KindRateLimited ErrorKind = "rate_limited"
	// KindUnavailable means a backend-side fault (5xx-class).
	KindUnavailable ErrorKind = "unavailable"
	// KindNetwork means a transport-level failure with no response received.
	KindNetwork ErrorKind = "network"
	// KindUnknownModel means the model id is not in the static catalog.
	// This fails before any network call.
	KindUnknownModel ErrorKind = "unknown_model"
)

// APIError is the typed failure returned by the invocation adapter.
type APIError struct {
	Kind    ErrorKind
	Status  int // HTTP status when one was received, 0 otherwise
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("llm: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("llm: %s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsKind reports whether err is (or wraps) an *APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// classifyStatus maps a non-200 HTTP response to a typed adapter error.
func classifyStatus(status int, body string) *APIError {
	kind := KindUnavailable
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuth
	case status == http.StatusTooManyRequests:
		kind = KindRateLimited
	case status >= 500:
		kind = KindUnavailable
	}
	return &APIError{Kind: kind, Status: status, Message: body}
}

// networkError wraps a transport failure where no response arrived.
func networkError(err error) *APIError {
	return &APIError{Kind: KindNetwork, Message: err.Error(), Err: err}
}
