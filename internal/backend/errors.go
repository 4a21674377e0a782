package backend

import (
	"encoding/json"
	"fmt"
)

// ErrBackendUnavailable indicates the backend is unreachable or returned a
// non-success status.
type ErrBackendUnavailable struct {
	Err error
}

func (e *ErrBackendUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend unavailable: %v", e.Err)
	}
	return "backend unavailable"
}

func (e *ErrBackendUnavailable) Unwrap() error { return e.Err }

// ErrMalformedResponse indicates the backend answered but the body does not
// have the expected shape.
type ErrMalformedResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed backend response: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }
