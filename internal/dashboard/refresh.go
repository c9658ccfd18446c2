package dashboard

import (
	"fmt"
	"strconv"
	"strings"
)

// RefreshIntervals are the selectable auto-refresh periods in seconds;
// 0 disables auto-refresh.
var RefreshIntervals = []int{0, 30, 60, 120, 300}

// ParseRefresh validates an interval given as text. Empty yields def.
func ParseRefresh(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidRefreshError{value: s}
	}
	for _, v := range RefreshIntervals {
		if v == n {
			return n, nil
		}
	}
	return 0, invalidRefreshError{value: s}
}

type invalidRefreshError struct{ value string }

func (e invalidRefreshError) Error() string {
	return fmt.Sprintf("invalid refresh interval %q: want one of %v", e.value, RefreshIntervals)
}

// IsInvalidRefresh reports whether err rejects a refresh interval.
func IsInvalidRefresh(err error) bool {
	_, ok := err.(invalidRefreshError)
	return ok
}
