package configedit

import (
	"errors"
	"fmt"
)

type notFoundError struct{ what, name string }

func (e notFoundError) Error() string { return fmt.Sprintf("%s not found: %s", e.what, e.name) }

// IsNotFound reports a missing config or template file.
func IsNotFound(err error) bool {
	var nf notFoundError
	return errors.As(err, &nf)
}

type dirNotFoundError struct{ dir string }

func (e dirNotFoundError) Error() string { return "models directory not found: " + e.dir }

// IsDirNotFound reports a missing models directory.
func IsDirNotFound(err error) bool {
	var dn dirNotFoundError
	return errors.As(err, &dn)
}

type alreadyExistsError struct{ name string }

func (e alreadyExistsError) Error() string { return "config already exists: " + e.name }

// IsAlreadyExists reports a create over an existing file.
func IsAlreadyExists(err error) bool {
	var ae alreadyExistsError
	return errors.As(err, &ae)
}

type invalidNameError struct{ name, reason string }

func (e invalidNameError) Error() string { return fmt.Sprintf("invalid config name %q: %s", e.name, e.reason) }

// IsInvalidName reports a rejected config name.
func IsInvalidName(err error) bool {
	var in invalidNameError
	return errors.As(err, &in)
}
