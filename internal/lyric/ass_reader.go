package lyric

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// collectASSEvents reads an ASS stream to completion: it seeks the
// [Events] column header, then classifies every following line as a
// meta comment, a dialogue event, or ignorable. Malformed dialogue
// lines are logged and skipped; only stream I/O failures are fatal.
func (c *Converter) collectASSEvents(r io.Reader) ([]string, []*Dialogue, bool, error) {
	var (
		meta      []string
		dialogues []*Dialogue
		warned    bool
	)

	scanner := bufio.NewScanner(r)
	afterFormat := false
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if lineNumber == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if !afterFormat {
			if strings.HasPrefix(strings.TrimLeft(line, " \t"), eventsFormatPrefix) {
				afterFormat = true
			}
			continue
		}

		if m := metaCommentRe.FindStringSubmatch(line); m != nil {
			if tag, ok := MetadataTag(m[1]); ok {
				meta = append(meta, tag)
			}
			continue
		}

		if !strings.HasPrefix(line, "Dialogue:") {
			continue
		}

		d, err := ParseDialogue(line, lineNumber)
		if err != nil {
			c.log.Warnw("skipping malformed dialogue line",
				"line", lineNumber, "error", err)
			warned = true
			continue
		}
		if d == nil {
			c.log.Warnw("dialogue line has unrecognized structure",
				"line", lineNumber)
			warned = true
			continue
		}

		if !isAuxiliaryStyle(d.Style) {
			if !c.checkDuration(d.DurationMS(), d.SumSegmentMS, lineNumber) {
				warned = true
			}
		}
		dialogues = append(dialogues, d)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, warned, fmt.Errorf("reading ASS input: %w", err)
	}
	return meta, dialogues, warned, nil
}
