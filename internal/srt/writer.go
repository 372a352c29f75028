package srt

import (
	"os"
	"path/filepath"
	"strings"
)

// Render serializes the records back to SRT text: one block per
// record, a single blank line between consecutive blocks and no
// trailing blank line after the last.
func Render(subs []Subtitle) string {
	var sb strings.Builder
	for i, sub := range subs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(sub.String())
	}
	return sb.String()
}

// WriteFile renders the records to path, creating parent directories
// as needed.
func WriteFile(path string, subs []Subtitle) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(Render(subs)), 0644)
}
