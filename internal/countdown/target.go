package countdown

import (
	"fmt"
	"strings"
	"time"
)

// TargetLayout is the wall-clock layout accepted by ParseTarget.
const TargetLayout = "2006-01-02T15:04:05"

// Target is the fixed instant the countdown runs towards.
// The zero Target has always arrived.
type Target struct {
	at time.Time
}

// NewTarget wraps an instant.
func NewTarget(at time.Time) Target {
	return Target{at: at}
}

// ParseTarget reads a local wall-clock literal in loc (time.Local when nil).
// On failure it returns the zero Target along with the error, so callers
// can log and still start an engine that reports arrival immediately.
func ParseTarget(literal string, loc *time.Location) (Target, error) {
	if loc == nil {
		loc = time.Local
	}
	at, err := time.ParseInLocation(TargetLayout, strings.TrimSpace(literal), loc)
	if err != nil {
		return Target{}, fmt.Errorf("parse countdown target %q: %w", literal, err)
	}
	return Target{at: at}, nil
}

// At returns the target instant.
func (t Target) At() time.Time {
	return t.at
}

// IsZero reports whether the target was never set.
func (t Target) IsZero() bool {
	return t.at.IsZero()
}

func (t Target) String() string {
	if t.at.IsZero() {
		return "unset"
	}
	return t.at.Format(time.RFC3339)
}
