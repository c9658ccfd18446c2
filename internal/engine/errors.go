package engine

import (
	"errors"
	"fmt"
	"strings"
)

// processFailedError is a non-zero exit from the engine CLI.
type processFailedError struct {
	op       string
	exitCode int
	stderr   string
}

func (e processFailedError) Error() string {
	msg := strings.TrimSpace(e.stderr)
	if msg == "" {
		msg = fmt.Sprintf("exit status %d", e.exitCode)
	}
	return e.op + ": " + msg
}

// IsProcessFailed reports whether err is a non-zero engine exit.
func IsProcessFailed(err error) bool {
	var pf processFailedError
	return errors.As(err, &pf)
}

// dependencyUnavailableError means the engine binary could not be launched
// or the daemon could not be reached.
type dependencyUnavailableError struct {
	what string
	err  error
}

func (e dependencyUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.what, e.err)
}

func (e dependencyUnavailableError) Unwrap() error { return e.err }

// IsDependencyUnavailable reports whether the engine itself is unreachable.
func IsDependencyUnavailable(err error) bool {
	var du dependencyUnavailableError
	return errors.As(err, &du)
}

// malformedOutputError is engine output that could not be parsed.
type malformedOutputError struct {
	op     string
	detail string
}

func (e malformedOutputError) Error() string {
	return fmt.Sprintf("%s: malformed output: %s", e.op, e.detail)
}

// IsMalformedOutput reports whether err came from unparseable engine output.
func IsMalformedOutput(err error) bool {
	var mo malformedOutputError
	return errors.As(err, &mo)
}

type unknownActionError struct{ action string }

func (e unknownActionError) Error() string { return "unknown action: " + e.action }

// IsUnknownAction reports whether err rejects an unsupported action name.
func IsUnknownAction(err error) bool {
	var ua unknownActionError
	return errors.As(err, &ua)
}
