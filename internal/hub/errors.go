package hub

import (
	"errors"
	"fmt"
)

// statusError is a non-2xx reply from the hub API.
type statusError struct {
	url    string
	status int
	body   string
}

func (e statusError) Error() string {
	if e.body != "" {
		return fmt.Sprintf("hub %s: HTTP %d: %s", e.url, e.status, e.body)
	}
	return fmt.Sprintf("hub %s: HTTP %d", e.url, e.status)
}

// IsNotFound reports whether the hub answered 404.
func IsNotFound(err error) bool {
	var se statusError
	return errors.As(err, &se) && se.status == 404
}

// IsUnauthorized reports whether the hub rejected the credentials; gated and
// private repositories need a token.
func IsUnauthorized(err error) bool {
	var se statusError
	return errors.As(err, &se) && (se.status == 401 || se.status == 403)
}

// IsUpstream reports whether err is any hub HTTP failure.
func IsUpstream(err error) bool {
	var se statusError
	return errors.As(err, &se)
}

type invalidKindError struct{ kind string }

func (e invalidKindError) Error() string { return "unknown repository kind: " + e.kind }

// IsInvalidKind reports whether a kind name was rejected.
func IsInvalidKind(err error) bool {
	var ik invalidKindError
	return errors.As(err, &ik)
}

type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string { return e.msg }

// IsInvalidInput reports whether a request field was missing or unsafe.
func IsInvalidInput(err error) bool {
	var ii invalidInputError
	return errors.As(err, &ii)
}
