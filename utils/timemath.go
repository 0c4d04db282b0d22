package utils

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat is the 24-hour clock layout used everywhere times of day are
// exchanged as strings. Internally the scheduler works in minutes from
// midnight.
const TimeFormat = "15:04"

// MinutesPerDay bounds every minutes-from-midnight value.
const MinutesPerDay = 24 * 60

// ErrInvalidTimeFormat rejects anything that is not a zero-padded 24-hour
// "HH:MM" string.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ToMinutes converts an "HH:MM" string to minutes since midnight.
func ToMinutes(t string) (int, error) {
	// time.Parse alone accepts unpadded hours ("9:30"), so pin the length.
	if len(t) != len(TimeFormat) {
		return 0, fmt.Errorf("%w: %q is not 24-hour HH:MM", ErrInvalidTimeFormat, t)
	}
	parsed, err := time.Parse(TimeFormat, t)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not 24-hour HH:MM", ErrInvalidTimeFormat, t)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// ToTimeString converts minutes since midnight to a zero-padded "HH:MM"
// string. Out-of-range values are clamped to the day.
func ToTimeString(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > MinutesPerDay-1 {
		minutes = MinutesPerDay - 1
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IntervalsOverlap reports whether two half-open intervals, in minutes from
// midnight, share any time. Touching boundaries do not overlap: an
// appointment ending at 10:00 does not conflict with one starting at 10:00.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
