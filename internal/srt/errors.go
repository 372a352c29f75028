package srt

import (
	"errors"
	"fmt"
)

// ErrNegativeTimestamp reports a shift that would move a timestamp
// before 00:00:00,000 while clamping is disabled.
var ErrNegativeTimestamp = errors.New("timestamp shifted before zero")

// FormatError reports malformed timestamp text.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%q is not a valid timestamp", e.Input)
}

// StructureError reports a malformed record structure: a missing
// sequence number, a bad timestamp line, an empty text block or a
// truncated file. Line is the 1-based input line the parser was on.
type StructureError struct {
	Line int
	Msg  string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
