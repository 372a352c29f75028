package srt

import "errors"

// Delay shifts every record by offsetMillis and returns the shifted
// records together with the original numbers of the records it had to
// drop. A negative offset advances the subtitles; start timestamps
// that would go below zero are clamped to 00:00:00,000, but a record
// whose end timestamp would go below zero is dropped entirely.
//
// Surviving records are renumbered densely from 1 in input order,
// regardless of their original numbers. The input slice is not
// modified.
func Delay(subs []Subtitle, offsetMillis int) (shifted []Subtitle, dropped []int) {
	for _, sub := range subs {
		newStart, err := sub.Start.DelayedBy(offsetMillis, true)
		if err != nil {
			// unreachable: clamping never fails
			panic(err)
		}
		newEnd, err := sub.End.DelayedBy(offsetMillis, false)
		if errors.Is(err, ErrNegativeTimestamp) {
			dropped = append(dropped, sub.Number)
			continue
		}

		text := make([]string, len(sub.Text))
		copy(text, sub.Text)

		shifted = append(shifted, Subtitle{
			Number: len(shifted) + 1,
			Start:  newStart,
			End:    newEnd,
			Text:   text,
		})
	}
	return shifted, dropped
}
