package lyric

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ASSToLYS converts a karaoke-tagged ASS stream to Lyricify Syllable.
// This is the only two-pass driver: the full dialogue list is
// materialized first because resolving a background line's alignment
// needs the previous record, and a run of consecutive background lines
// inherits the property of the first non-background predecessor.
func (c *Converter) ASSToLYS(r io.Reader, w io.Writer) (bool, error) {
	meta, dialogues, warned, err := c.collectASSEvents(r)
	if err != nil {
		return warned, err
	}

	bw := bufio.NewWriter(w)
	for _, tag := range meta {
		if _, err := bw.WriteString(tag + "\n"); err != nil {
			return warned, fmt.Errorf("writing LYS output: %w", err)
		}
	}

	inference := newPropertyInference()
	written := 0

	for i, d := range dialogues {
		// translation/romanization tracks never appear in LYS output,
		// but they still participate in previous-line lookback
		if isAuxiliaryStyle(d.Style) {
			continue
		}

		cur, unrecognized := ClassifyRole(d.Role)
		if unrecognized {
			c.log.Warnw("unrecognized role tag",
				"line", d.LineNumber, "role", d.Role)
			warned = true
		}

		prev := RoleOther
		if i > 0 {
			prev, _ = ClassifyRole(dialogues[i-1].Role)
		}

		property := inference.next(cur, prev)
		if _, err := bw.WriteString(formatLYSLine(property, d) + "\n"); err != nil {
			return warned, fmt.Errorf("writing LYS output: %w", err)
		}
		written++
	}

	if err := bw.Flush(); err != nil {
		return warned, fmt.Errorf("writing LYS output: %w", err)
	}

	c.log.Infow("ASS to LYS conversion complete",
		"lines", written, "dialogues", len(dialogues))
	return warned, nil
}

// [property] prefix followed by the shared inline token grammar
func formatLYSLine(property int, d *Dialogue) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d]", property)
	appendInlineSegments(&sb, d)
	return sb.String()
}
