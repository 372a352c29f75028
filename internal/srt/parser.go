package srt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type parserState int

const (
	awaitingNumber parserState = iota
	awaitingTimestamps
	awaitingText
)

// Parse reads a whole SRT document and returns its records in input
// order. Records are blocks of a sequence-number line, a timestamp
// line and at least one text line, separated by blank lines; every
// line is trimmed of surrounding whitespace before interpretation.
//
// The parser trusts the numbers it finds: it does not require them to
// be unique or ascending, and it does not require start <= end.
func Parse(r io.Reader) ([]Subtitle, error) {
	var (
		subtitles []Subtitle
		state     = awaitingNumber

		number     int
		start, end Timestamp
		text       []string
	)

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimSpace(line)

		switch state {
		case awaitingNumber:
			if line == "" {
				continue
			}
			if !isDigits(line) {
				return nil, &StructureError{
					Line: lineNum,
					Msg:  fmt.Sprintf("expected a sequence number, got %q", line),
				}
			}
			number, _ = strconv.Atoi(line)
			state = awaitingTimestamps

		case awaitingTimestamps:
			parts := strings.Split(line, "-->")
			if len(parts) != 2 {
				return nil, &StructureError{
					Line: lineNum,
					Msg:  fmt.Sprintf("expected two timestamps separated by \"-->\", got %q", line),
				}
			}
			var err error
			if start, err = ParseTimestamp(strings.TrimSpace(parts[0])); err != nil {
				return nil, fmt.Errorf("line %d: invalid start timestamp: %w", lineNum, err)
			}
			if end, err = ParseTimestamp(strings.TrimSpace(parts[1])); err != nil {
				return nil, fmt.Errorf("line %d: invalid end timestamp: %w", lineNum, err)
			}
			state = awaitingText

		case awaitingText:
			if line != "" {
				text = append(text, line)
				continue
			}
			if len(text) == 0 {
				return nil, &StructureError{
					Line: lineNum,
					Msg:  "expected at least one line of text after the timestamps",
				}
			}
			subtitles = append(subtitles, Subtitle{
				Number: number,
				Start:  start,
				End:    end,
				Text:   text,
			})
			text = nil
			state = awaitingNumber
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	// end of input acts as a final blank line
	switch state {
	case awaitingTimestamps:
		return nil, &StructureError{
			Line: lineNum,
			Msg:  "file ended in the middle of an incomplete subtitle",
		}
	case awaitingText:
		if len(text) == 0 {
			return nil, &StructureError{
				Line: lineNum,
				Msg:  "file ended in the middle of an incomplete subtitle",
			}
		}
		subtitles = append(subtitles, Subtitle{
			Number: number,
			Start:  start,
			End:    end,
			Text:   text,
		})
	}

	return subtitles, nil
}

// isDigits reports whether s is a non-empty run of ASCII decimal
// digits. strconv.Atoi alone is too lenient, it accepts signs.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
