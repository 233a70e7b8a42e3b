package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrMissingField           = errors.New("missing required field")
	ErrMalformedPayload       = errors.New("malformed payload")
	ErrStorage                = errors.New("storage error")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrNotFound               = errors.New("not found")
	ErrUnknownAction          = errors.New("unknown action")
)

// MissingFieldError lists required request fields that were absent or empty.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required data: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// NewMissingFieldError creates a MissingFieldError for the given fields.
func NewMissingFieldError(fields ...string) *MissingFieldError {
	return &MissingFieldError{Fields: fields}
}

// MalformedPayloadError reports a line-items payload that could not be decoded.
type MalformedPayloadError struct {
	Reason string
	Err    error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid items data: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid items data: %s", e.Reason)
}

func (e *MalformedPayloadError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedPayload, e.Err}
	}
	return []error{ErrMalformedPayload}
}

// NewMalformedPayloadError creates a MalformedPayloadError with an optional cause.
func NewMalformedPayloadError(reason string, cause error) *MalformedPayloadError {
	return &MalformedPayloadError{Reason: reason, Err: cause}
}

// StorageError wraps an underlying read/write failure of the ledger or catalog.
// It is surfaced verbatim and never retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

// NewStorageError wraps err with the failing operation name. Returns nil for a nil err.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// UserMessage renders the text a client sees after the "Error: " prefix.
// Validation failures get fixed, user-correctable messages; storage and
// other failures are passed through verbatim.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingField):
		return "Missing required data"
	case errors.Is(err, ErrMalformedPayload):
		return "Invalid items data"
	case errors.Is(err, ErrUnknownAction):
		return "Unknown action"
	default:
		return err.Error()
	}
}
