package lyric

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apoint123/lyconv/internal/timecode"
)

// QRCToASS converts a QRC stream to a karaoke-tagged ASS file. Lines
// without a [start,duration] header (metadata, blanks) are passed
// over; timing gaps between words are reconstructed as silent tags.
func (c *Converter) QRCToASS(r io.Reader, w io.Writer) (bool, error) {
	bw := bufio.NewWriter(w)
	if err := c.writeASSHeader(bw); err != nil {
		return false, fmt.Errorf("writing ASS output: %w", err)
	}

	scanner := bufio.NewScanner(r)
	warned := false
	lineNumber := 0
	written := 0

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if lineNumber == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		m := qrcHeaderRe.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}

		startMS, err1 := strconv.Atoi(line[m[2]:m[3]])
		durationMS, err2 := strconv.Atoi(line[m[4]:m[5]])
		if err1 != nil || err2 != nil {
			c.log.Warnw("skipping QRC line with unparsable header",
				"line", lineNumber)
			warned = true
			continue
		}
		endMS := startMS + durationMS

		tokens, trailing, err := parseInlineTokens(line[m[1]:])
		if err != nil {
			c.log.Warnw("skipping QRC line with unparsable word timestamp",
				"line", lineNumber, "error", err)
			warned = true
			continue
		}

		text := rebuildKaraokeText(startMS, endMS, tokens, trailing)
		if text == "" {
			continue
		}

		if _, err := fmt.Fprintf(bw, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			timecode.MSToASS(startMS), timecode.MSToASS(endMS), text,
		); err != nil {
			return warned, fmt.Errorf("writing ASS output: %w", err)
		}
		written++
	}

	if err := scanner.Err(); err != nil {
		return warned, fmt.Errorf("reading QRC input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return warned, fmt.Errorf("writing ASS output: %w", err)
	}

	c.log.Infow("QRC to ASS conversion complete", "lines", written)
	return warned, nil
}
