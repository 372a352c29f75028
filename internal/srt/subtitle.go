package srt

import (
	"fmt"
	"strings"
)

// represents a single subtitle record
type Subtitle struct {
	Number int
	Start  Timestamp
	End    Timestamp
	Text   []string
}

// String renders the record in SRT block form, ending with the newline
// that terminates the last text line.
func (s Subtitle) String() string {
	return fmt.Sprintf("%d\n%s --> %s\n%s\n",
		s.Number, s.Start, s.End, strings.Join(s.Text, "\n"))
}
