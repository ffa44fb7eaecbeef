package lyric

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apoint123/lyconv/internal/timecode"
)

// parseInlineTokens extracts the (start,duration) word timestamps from
// a QRC/LYS content string, pairing each with the literal text that
// precedes it. The returned trailing string is whatever follows the
// last timestamp.
func parseInlineTokens(content string) ([]Token, string, error) {
	matches := wordTimeRe.FindAllStringSubmatchIndex(content, -1)
	tokens := make([]Token, 0, len(matches))

	last := 0
	for _, m := range matches {
		startMS, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil {
			return nil, "", fmt.Errorf("word start %q: %w", content[m[2]:m[3]], err)
		}
		durationMS, err := strconv.Atoi(content[m[4]:m[5]])
		if err != nil {
			return nil, "", fmt.Errorf("word duration %q: %w", content[m[4]:m[5]], err)
		}

		tokens = append(tokens, Token{
			Text:       content[last:m[0]],
			StartMS:    startMS,
			DurationMS: durationMS,
		})
		last = m[1]
	}

	return tokens, content[last:], nil
}

// rebuildKaraokeText re-emits a karaoke-tagged ASS text string for
// tokens covering the [startMS, endMS] span. Silent gaps between
// tokens, and between the span boundaries and the first/last token,
// become standalone duration tags. Zero-valued tags are never emitted.
func rebuildKaraokeText(startMS, endMS int, tokens []Token, trailing string) string {
	var sb strings.Builder
	lastEndMS := startMS

	for _, tok := range tokens {
		if tok.StartMS > lastEndMS {
			if gapK := timecode.KValue(tok.StartMS - lastEndMS); gapK > 0 {
				fmt.Fprintf(&sb, "{\\k%d}", gapK)
			}
		}

		if k := timecode.KValue(tok.DurationMS); k > 0 {
			fmt.Fprintf(&sb, "{\\k%d}%s", k, tok.Text)
		} else if tok.Text != "" {
			sb.WriteString(tok.Text)
		}

		lastEndMS = tok.StartMS + tok.DurationMS
	}

	if trailing != "" {
		if endMS > lastEndMS {
			if gapK := timecode.KValue(endMS - lastEndMS); gapK > 0 {
				fmt.Fprintf(&sb, "{\\k%d}%s", gapK, trailing)
			} else {
				sb.WriteString(trailing)
			}
		} else {
			sb.WriteString(trailing)
		}
	} else if endMS > lastEndMS {
		if gapK := timecode.KValue(endMS - lastEndMS); gapK > 0 {
			fmt.Fprintf(&sb, "{\\k%d}", gapK)
		}
	}

	return sb.String()
}

// checkDuration compares a line's declared duration against the sum of
// its karaoke segments. A mismatch is logged and reported but never
// aborts the conversion.
func (c *Converter) checkDuration(expectedMS, actualMS, lineNumber int) bool {
	if expectedMS != actualMS {
		c.log.Warnw("karaoke tag durations don't add up to the line duration",
			"line", lineNumber,
			"tag_sum_ms", actualMS,
			"line_duration_ms", expectedMS,
		)
		return false
	}
	return true
}
