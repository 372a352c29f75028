package srt

import (
	"errors"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		input  string
		millis int
	}{
		{"00:00:00,000", 0},
		{"00:00:01,000", 1000},
		{"01:02:03,004", 3723004},
		{"23:59:59,999", 86399999},
		// short components are accepted
		{"1:2:3,4", 3723004},
		{"0:0:0,0", 0},
		{"12:34:56,78", 45296078},
	}

	for _, tc := range cases {
		ts, err := ParseTimestamp(tc.input)
		if err != nil {
			t.Errorf("ParseTimestamp(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if ts.Millis != tc.millis {
			t.Errorf(
				"ParseTimestamp(%q): expected %d millis, got %d",
				tc.input, tc.millis, ts.Millis,
			)
		}
	}
}

func TestParseTimestampRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"00:00:00.000",    // wrong millis separator
		"00:00:00",        // missing millis
		"24:00:00,000",    // hour out of range
		"00:60:00,000",    // minute out of range
		"00:00:60,000",    // second out of range
		"00:00:00,1000",   // too many millis digits
		"00:00:00,000 ",   // trailing garbage
		" 00:00:00,000",   // leading garbage
		"-00:00:00,000",   // sign
		"00:00:00,000abc", // suffix
		"0000:00,000",     // missing separator
	}

	for _, input := range inputs {
		_, err := ParseTimestamp(input)
		if err == nil {
			t.Errorf("ParseTimestamp(%q): expected error, got none", input)
			continue
		}
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("ParseTimestamp(%q): expected *FormatError, got %T", input, err)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	inputs := []string{
		"00:00:00,000",
		"00:00:01,500",
		"01:02:03,004",
		"23:59:59,999",
		"10:00:00,001",
	}

	for _, input := range inputs {
		ts, err := ParseTimestamp(input)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", input, err)
		}
		if got := ts.String(); got != input {
			t.Errorf("round trip of %q: got %q", input, got)
		}
	}
}

func TestTimestampFormatPadsShortComponents(t *testing.T) {
	ts, err := ParseTimestamp("1:2:3,4")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if got := ts.String(); got != "01:02:03,004" {
		t.Errorf("expected canonical 01:02:03,004, got %q", got)
	}
}

func TestDelayedByPositiveOffset(t *testing.T) {
	ts := Timestamp{Millis: 1000}

	// a non-negative offset never goes negative, the clamp flag is moot
	for _, clamp := range []bool{true, false} {
		shifted, err := ts.DelayedBy(500, clamp)
		if err != nil {
			t.Fatalf("DelayedBy(500, %v): %v", clamp, err)
		}
		if shifted.Millis != 1500 {
			t.Errorf(
				"DelayedBy(500, %v): expected 1500, got %d",
				clamp, shifted.Millis,
			)
		}
	}
}

func TestDelayedByNegativeOffsetWithinRange(t *testing.T) {
	ts := Timestamp{Millis: 2000}

	shifted, err := ts.DelayedBy(-1500, false)
	if err != nil {
		t.Fatalf("DelayedBy(-1500, false): %v", err)
	}
	if shifted.Millis != 500 {
		t.Errorf("expected 500, got %d", shifted.Millis)
	}
}

func TestDelayedByClampsToZero(t *testing.T) {
	ts := Timestamp{Millis: 500}

	shifted, err := ts.DelayedBy(-1000, true)
	if err != nil {
		t.Fatalf("DelayedBy(-1000, true): %v", err)
	}
	if shifted.Millis != 0 {
		t.Errorf("expected clamp to 0, got %d", shifted.Millis)
	}
}

func TestDelayedByRejectsNegativeResult(t *testing.T) {
	ts := Timestamp{Millis: 500}

	_, err := ts.DelayedBy(-1000, false)
	if !errors.Is(err, ErrNegativeTimestamp) {
		t.Errorf("expected ErrNegativeTimestamp, got %v", err)
	}
}
