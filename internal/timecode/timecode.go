package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute

	// one karaoke K unit ({\k1}) is a centisecond
	MSPerK = 10
)

// reports a time string that does not match the H:MM:SS.cs shape
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid ASS time %q: expected H:MM:SS.cs", e.Input)
}

// MSToASS formats milliseconds as an ASS timestamp (H:MM:SS.cs).
// Centiseconds truncate; no rounding.
func MSToASS(ms int) string {
	hours := ms / msPerHour
	minutes := (ms % msPerHour) / msPerMinute
	seconds := (ms % msPerMinute) / msPerSecond
	centis := (ms % msPerSecond) / MSPerK

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

// ASSToMS parses an ASS timestamp (H:MM:SS.cs) into milliseconds.
func ASSToMS(s string) (int, error) {
	parts := strings.Split(strings.ReplaceAll(s, ".", ":"), ":")
	if len(parts) != 4 {
		return 0, &FormatError{Input: s}
	}

	values := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return 0, &FormatError{Input: s}
		}
		values[i] = v
	}

	return values[0]*msPerHour +
		values[1]*msPerMinute +
		values[2]*msPerSecond +
		values[3]*MSPerK, nil
}

// MSToLRC formats milliseconds as an LRC timestamp ([MM:SS.xx],
// xx = hundredths).
func MSToLRC(ms int) string {
	minutes := ms / msPerMinute
	seconds := (ms % msPerMinute) / msPerSecond
	hundredths := (ms % msPerSecond) / MSPerK

	return fmt.Sprintf("[%02d:%02d.%02d]", minutes, seconds, hundredths)
}

// KValue converts a millisecond duration to a karaoke K value
// (centiseconds), rounding half up. A zero K value means the tag is
// suppressed by the emitters.
func KValue(durationMS int) int {
	if durationMS < 0 {
		return 0
	}
	return (durationMS + MSPerK/2) / MSPerK
}
