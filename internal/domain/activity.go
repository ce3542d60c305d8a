package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidActivity is returned when an activity kind is not one of the
// seven fixed kinds.
var ErrInvalidActivity = errors.New("invalid activity kind")

// Activity identifies the kind of a study session. The set of kinds is
// closed: exactly these seven values are valid.
type Activity string

// The seven activity kinds.
const (
	ActivitySpeaking  Activity = "speaking"
	ActivityListening Activity = "listening"
	ActivityVocab     Activity = "vocab"
	ActivityGrammar   Activity = "grammar"
	ActivityWriting   Activity = "writing"
	ActivityReading   Activity = "reading"
	ActivityReview    Activity = "review"
)

// activities lists all kinds in their canonical order. Breakdown views
// enumerate kinds in this order regardless of data presence.
var activities = []Activity{
	ActivitySpeaking,
	ActivityListening,
	ActivityVocab,
	ActivityGrammar,
	ActivityWriting,
	ActivityReading,
	ActivityReview,
}

// Activities returns all activity kinds in canonical order.
// The returned slice is a copy and safe to modify.
func Activities() []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities)
	return out
}

// IsValid reports whether a is one of the seven fixed kinds.
func (a Activity) IsValid() bool {
	switch a {
	case ActivitySpeaking, ActivityListening, ActivityVocab, ActivityGrammar,
		ActivityWriting, ActivityReading, ActivityReview:
		return true
	default:
		return false
	}
}

// String returns the activity kind as a string.
func (a Activity) String() string {
	return string(a)
}

// ParseActivity converts a string into an Activity, ignoring case and
// surrounding whitespace. Returns ErrInvalidActivity for unknown kinds.
func ParseActivity(input string) (Activity, error) {
	a := Activity(strings.TrimSpace(strings.ToLower(input)))
	if !a.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidActivity, input)
	}
	return a, nil
}
