package lyric

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apoint123/lyconv/internal/timecode"
)

// LYSToASS converts a Lyricify Syllable stream to a karaoke-tagged ASS
// file. The line span is derived from the inline timestamps (earliest
// start to latest end) and the property code maps back to the Name
// field.
func (c *Converter) LYSToASS(r io.Reader, w io.Writer) (bool, error) {
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

		m := lysPropertyRe.FindStringSubmatchIndex(line)
		if m == nil {
			// metadata tags start with '[' too; only flag lines that
			// look like actual content
			if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, "[") {
				c.log.Warnw("unrecognized LYS line",
					"line", lineNumber, "content", line)
				warned = true
			}
			continue
		}

		property, err := strconv.Atoi(line[m[2]:m[3]])
		if err != nil {
			property = PropertyUnset
		}

		tokens, trailing, err := parseInlineTokens(line[m[4]:m[5]])
		if err != nil {
			c.log.Warnw("skipping LYS line with unparsable word timestamp",
				"line", lineNumber, "error", err)
			warned = true
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		startMS := tokens[0].StartMS
		endMS := 0
		for _, tok := range tokens {
			if tok.StartMS < startMS {
				startMS = tok.StartMS
			}
			if tokEnd := tok.StartMS + tok.DurationMS; tokEnd > endMS {
				endMS = tokEnd
			}
		}

		text := rebuildKaraokeText(startMS, endMS, tokens, trailing)
		if text == "" {
			continue
		}

		if _, err := fmt.Fprintf(bw, "Dialogue: 0,%s,%s,Default,%s,0,0,0,,%s\n",
			timecode.MSToASS(startMS), timecode.MSToASS(endMS),
			RoleForProperty(property), text,
		); err != nil {
			return warned, fmt.Errorf("writing ASS output: %w", err)
		}
		written++
	}

	if err := scanner.Err(); err != nil {
		return warned, fmt.Errorf("reading LYS input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return warned, fmt.Errorf("writing ASS output: %w", err)
	}

	c.log.Infow("LYS to ASS conversion complete", "lines", written)
	return warned, nil
}
