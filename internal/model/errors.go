package model

import (
	"errors"
	"fmt"
)

// ValidationError reports a submission that fails the length or emptiness
// constraints. It is raised before any scorer executes and is fully
// recoverable: the caller may correct the input and resubmit.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid submission: %s %s", e.Field, e.Reason)
}

// CorpusError reports a corpus snapshot that is malformed or unreadable.
// It is surfaced to the caller and never retried by the core.
type CorpusError struct {
	Path string
	Err  error
}

func (e *CorpusError) Error() string {
	return fmt.Sprintf("corpus %s: %v", e.Path, e.Err)
}

func (e *CorpusError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsCorpus reports whether err is (or wraps) a CorpusError.
func IsCorpus(err error) bool {
	var ce *CorpusError
	return errors.As(err, &ce)
}
