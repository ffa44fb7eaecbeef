package lyric

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/apoint123/lyconv/internal/timecode"
)

// one line of extracted LRC output
type LRCLine struct {
	StartMS int
	Text    string
}

// ExtractTranslations collects translation lines (style "ts" or
// "trans" with an "x-lang:<code>" role tag) from an ASS stream,
// grouped by language code and sorted by start time.
func (c *Converter) ExtractTranslations(r io.Reader) (map[string][]LRCLine, bool, error) {
	translations := make(map[string][]LRCLine)

	warned, err := c.scanPlainLines(r, func(style, role, start, text string, lineNumber int) bool {
		if style != "ts" && style != "trans" {
			return false
		}
		m := langTagRe.FindStringSubmatch(strings.TrimSpace(role))
		if m == nil {
			return false
		}
		lang := strings.ToLower(m[1])

		startMS, err := timecode.ASSToMS(start)
		if err != nil {
			c.log.Warnw("translation line has unparsable start time",
				"line", lineNumber, "error", err)
			return true
		}
		if plain := stripASSTags(text); plain != "" {
			translations[lang] = append(translations[lang], LRCLine{
				StartMS: startMS,
				Text:    plain,
			})
		}
		return false
	})
	if err != nil {
		return nil, warned, err
	}

	for _, lines := range translations {
		sortLRCLines(lines)
	}
	return translations, warned, nil
}

// ExtractRomanization collects romanization lines (style "roma") from
// an ASS stream, sorted by start time.
func (c *Converter) ExtractRomanization(r io.Reader) ([]LRCLine, bool, error) {
	var roma []LRCLine

	warned, err := c.scanPlainLines(r, func(style, role, start, text string, lineNumber int) bool {
		if !strings.EqualFold(style, "roma") {
			return false
		}

		startMS, err := timecode.ASSToMS(start)
		if err != nil {
			c.log.Warnw("romanization line has unparsable start time",
				"line", lineNumber, "error", err)
			return true
		}
		if plain := stripASSTags(text); plain != "" {
			roma = append(roma, LRCLine{StartMS: startMS, Text: plain})
		}
		return false
	})
	if err != nil {
		return nil, warned, err
	}

	sortLRCLines(roma)
	return roma, warned, nil
}

// scanPlainLines walks the dialogue events of an ASS stream and hands
// each one's style, role, start time and raw text to visit. visit
// returns true to flag a warning.
func (c *Converter) scanPlainLines(
	r io.Reader,
	visit func(style, role, start, text string, lineNumber int) bool,
) (bool, error) {
	scanner := bufio.NewScanner(r)
	afterFormat := false
	warned := false
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

		if !strings.HasPrefix(line, "Dialogue:") {
			continue
		}
		m := dialogueRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		if visit(strings.TrimSpace(m[3]), m[4], m[1], m[5], lineNumber) {
			warned = true
		}
	}

	if err := scanner.Err(); err != nil {
		return warned, fmt.Errorf("reading ASS input: %w", err)
	}
	return warned, nil
}

func sortLRCLines(lines []LRCLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].StartMS < lines[j].StartMS
	})
}

// FormatLRC renders extracted lines as LRC text.
func FormatLRC(lines []LRCLine) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(timecode.MSToLRC(l.StartMS))
		sb.WriteString(l.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
