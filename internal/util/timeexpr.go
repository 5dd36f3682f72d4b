package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimeExpr turns a user-supplied time expression into an absolute
// time. Relative forms ("2h", "3d", "2w", "1mo") count back from now;
// absolute forms accept RFC3339, "2006-01-02T15:04" and "2006-01-02".
func ParseTimeExpr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time expression")
	}

	// Shorthands Go's duration parser lacks. Listed longest suffix first
	// so "mo" is not eaten by a bare unit.
	for _, sfx := range []string{"mo", "w", "d"} {
		num, ok := strings.CutSuffix(s, sfx)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("invalid %q duration: %q", sfx, s)
		}
		switch sfx {
		case "mo":
			return now.AddDate(0, -n, 0), nil
		case "w":
			return now.AddDate(0, 0, -7*n), nil
		default:
			return now.AddDate(0, 0, -n), nil
		}
	}

	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(-d), nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time expression: %q", s)
}
