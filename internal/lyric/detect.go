package lyric

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// HasAlignmentRoles reports whether any dialogue event carries an
// explicit alignment or background role keyword. Automatic mode uses
// this to route an ASS input to LYS (dual-singer layout) instead of
// QRC.
func HasAlignmentRoles(r io.Reader) (bool, error) {
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

		if !strings.HasPrefix(line, "Dialogue:") {
			continue
		}
		m := dialogueRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		role := strings.TrimSpace(m[4])
		if role == "" {
			continue
		}
		if category, _ := ClassifyRole(role); category != RoleOther {
			return true, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("reading ASS input: %w", err)
	}
	return false, nil
}
