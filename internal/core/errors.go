package core

import (
	"errors"
	"fmt"
)

// ErrRetrievalUnavailable is returned when the backend cannot serve a
// query and demo mode does not permit a synthesized fallback.
var ErrRetrievalUnavailable = errors.New("retrieval backend unavailable")

// TransportError wraps a network-level failure reaching the backend,
// including timeouts.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// BackendRejected means the backend was reachable but refused the query,
// either with a non-2xx status or an explicit success:false envelope.
type BackendRejected struct {
	Status  int
	Message string
}

func (e *BackendRejected) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend rejected query (http %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend rejected query: %s", e.Message)
}

// ValidationError rejects malformed input before it reaches the backend.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

// ConfigurationError means the backend client cannot be constructed.
// Fatal at startup, never recovered per request.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

// IsBackendFailure reports whether err is a failure the dispatcher may
// recover from with a synthesized answer when demo mode allows it.
func IsBackendFailure(err error) bool {
	var te *TransportError
	var br *BackendRejected
	return errors.As(err, &te) || errors.As(err, &br)
}

// IsTransport reports whether err is a network-level failure, the only
// kind worth retrying.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
