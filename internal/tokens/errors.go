package tokens

import (
	"errors"
	"fmt"
)

type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string { return e.msg }

// IsInvalidInput reports a missing model name or text.
func IsInvalidInput(err error) bool {
	var ii invalidInputError
	return errors.As(err, &ii)
}

// loadError means the tokenizer for a model could not be loaded or run.
type loadError struct {
	model string
	err   error
}

func (e loadError) Error() string { return fmt.Sprintf("load tokenizer for %s: %v", e.model, e.err) }

func (e loadError) Unwrap() error { return e.err }

// IsLoadFailed reports whether a tokenizer failed to load.
func IsLoadFailed(err error) bool {
	var le loadError
	return errors.As(err, &le)
}

// dependencyUnavailableError signals a tokenizer backend missing from this build.
type dependencyUnavailableError struct{ msg string }

func (e dependencyUnavailableError) Error() string { return e.msg }

// IsDependencyUnavailable reports whether a tokenizer backend is not built in.
func IsDependencyUnavailable(err error) bool {
	var du dependencyUnavailableError
	return errors.As(err, &du)
}
