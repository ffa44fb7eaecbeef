package lyric

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ASSToQRC converts a karaoke-tagged ASS stream to QRC. Metadata from
// meta comments is written ahead of the timed content. The returned
// bool reports whether any non-fatal warning occurred.
func (c *Converter) ASSToQRC(r io.Reader, w io.Writer) (bool, error) {
	meta, dialogues, warned, err := c.collectASSEvents(r)
	if err != nil {
		return warned, err
	}

	bw := bufio.NewWriter(w)
	for _, tag := range meta {
		if _, err := bw.WriteString(tag + "\n"); err != nil {
			return warned, fmt.Errorf("writing QRC output: %w", err)
		}
	}
	for _, d := range dialogues {
		if _, err := bw.WriteString(formatQRCLine(d) + "\n"); err != nil {
			return warned, fmt.Errorf("writing QRC output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return warned, fmt.Errorf("writing QRC output: %w", err)
	}

	c.log.Infow("ASS to QRC conversion complete", "lines", len(dialogues))
	return warned, nil
}

// [start,duration] header followed by text(absolute_start,duration)
// for every non-empty segment
func formatQRCLine(d *Dialogue) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d,%d]", d.StartMS, d.DurationMS())
	appendInlineSegments(&sb, d)
	return sb.String()
}

// appendInlineSegments writes the shared QRC/LYS inline token grammar:
// each segment's text followed by its absolute start and duration.
// Segments with no text and no duration are dropped.
func appendInlineSegments(sb *strings.Builder, d *Dialogue) {
	segStartMS := d.StartMS
	for _, seg := range d.Segments {
		if seg.Text == "" && seg.DurationMS == 0 {
			continue
		}
		fmt.Fprintf(sb, "%s(%d,%d)", seg.Text, segStartMS, seg.DurationMS)
		segStartMS += seg.DurationMS
	}
}
