package lyric

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apoint123/lyconv/internal/timecode"
)

// ParseDialogue parses one raw ASS dialogue line into a Dialogue
// record. It returns (nil, nil) when the line does not match the
// dialogue field grammar at all; callers treat that as "not a dialogue
// line" rather than a fatal condition.
func ParseDialogue(line string, lineNumber int) (*Dialogue, error) {
	m := dialogueRe.FindStringSubmatch(line)
	if m == nil {
		return nil, nil
	}

	startMS, err := timecode.ASSToMS(m[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: start time: %w", lineNumber, err)
	}
	endMS, err := timecode.ASSToMS(m[2])
	if err != nil {
		return nil, fmt.Errorf("line %d: end time: %w", lineNumber, err)
	}

	d := &Dialogue{
		LineNumber: lineNumber,
		StartMS:    startMS,
		EndMS:      endMS,
		Style:      strings.TrimSpace(m[3]),
		Role:       m[4],
	}

	for _, k := range kTagRe.FindAllStringSubmatch(m[5], -1) {
		centis, err := strconv.Atoi(k[1])
		if err != nil {
			return nil, fmt.Errorf(
				"line %d: karaoke tag value %q: %w", lineNumber, k[1], err,
			)
		}
		segMS := centis * timecode.MSPerK
		d.Segments = append(d.Segments, Segment{
			Text:       k[2],
			DurationMS: segMS,
		})
		d.SumSegmentMS += segMS
	}

	return d, nil
}
