package srt

import (
	"fmt"
	"regexp"
	"strconv"
)

// hours 0-23, minutes and seconds 0-59, 1 to 3 millisecond digits
var timestampPattern = regexp.MustCompile(
	`^([01]?[0-9]|2[0-3]):([0-5]?[0-9]):([0-5]?[0-9]),([0-9]{1,3})$`,
)

// represents a point in time as milliseconds from the start of playback
type Timestamp struct {
	Millis int
}

// ParseTimestamp parses the SRT timestamp form HH:MM:SS,mmm.
// Hours, minutes and seconds may be written with a single digit and
// milliseconds with fewer than three, but out-of-range components or
// any other deviation from the pattern are rejected.
func ParseTimestamp(s string) (Timestamp, error) {
	matches := timestampPattern.FindStringSubmatch(s)
	if matches == nil {
		return Timestamp{}, &FormatError{Input: s}
	}

	// the pattern only admits digit runs, Atoi cannot fail here
	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	sec, _ := strconv.Atoi(matches[3])
	ms, _ := strconv.Atoi(matches[4])

	return Timestamp{Millis: ms + 1000*sec + 60000*m + 3600000*h}, nil
}

// String renders the canonical zero-padded form HH:MM:SS,mmm.
func (t Timestamp) String() string {
	hours, rest := t.Millis/3600000, t.Millis%3600000
	minutes, rest := rest/60000, rest%60000
	seconds, millis := rest/1000, rest%1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// DelayedBy returns a new Timestamp shifted by offsetMillis, which may
// be negative. A shift below zero either clamps to 00:00:00,000 or
// fails with ErrNegativeTimestamp, depending on clampToZero.
func (t Timestamp) DelayedBy(offsetMillis int, clampToZero bool) (Timestamp, error) {
	shifted := t.Millis + offsetMillis
	if shifted < 0 {
		if !clampToZero {
			return Timestamp{}, ErrNegativeTimestamp
		}
		shifted = 0
	}
	return Timestamp{Millis: shifted}, nil
}
