package lyric

import (
	"regexp"
	"strings"

	"github.com/apoint123/lyconv/internal/logging"
)

// one karaoke-timed chunk of a line
type Segment struct {
	Text       string
	DurationMS int
}

// one parsed ASS dialogue event
type Dialogue struct {
	LineNumber   int
	StartMS      int
	EndMS        int
	Role         string // Name field, empty when absent
	Style        string
	Segments     []Segment
	SumSegmentMS int
}

// line duration, clamped to zero when the end precedes the start
func (d *Dialogue) DurationMS() int {
	if d.EndMS < d.StartMS {
		return 0
	}
	return d.EndMS - d.StartMS
}

// one inline word timestamp from a QRC or LYS content string, paired
// with the literal text that precedes it
type Token struct {
	Text       string
	StartMS    int
	DurationMS int
}

// column header that opens the [Events] section; everything before it
// is skipped by the drivers
const eventsFormatPrefix = "Format: Layer, Start, End, Style, Name,"

var (
	// {\kN} or {\kfN} followed by the text it times
	kTagRe = regexp.MustCompile(`\{\\kf?(\d+)\}([^\\{]*)`)

	// Dialogue: Layer,Start,End,Style,Name,MarginL,MarginR,MarginV,Effect,Text
	dialogueRe = regexp.MustCompile(
		`^Dialogue:\s*[^,]+,(\d+:\d+:\d+\.\d+),(\d+:\d+:\d+\.\d+),([^,]*),([^,]*),[^,]*,[^,]*,[^,]*,[^,]*,(.*)`,
	)

	// QRC line header [start_ms,duration_ms]
	qrcHeaderRe = regexp.MustCompile(`\[(\d+),(\d+)\]`)

	// inline word timestamp (start_ms,duration_ms)
	wordTimeRe = regexp.MustCompile(`\((\d+),(\d+)\)`)

	// LYS property prefix [property] and the content after it
	lysPropertyRe = regexp.MustCompile(`\[(\d+)\](.*)`)

	// zero-duration meta comment carrying key:value metadata
	metaCommentRe = regexp.MustCompile(
		`^Comment:\s*\d+,0:00:00\.00,0:00:00\.00,meta,,0,0,0,,(.*)`,
	)

	// language suffix on the Name field of translation lines
	langTagRe = regexp.MustCompile(`^x-lang:(.+)$`)

	// any {...} override block, for stripping
	assTagRe = regexp.MustCompile(`\{[^}]*\}`)
)

// Converter runs the format drivers. Each invocation owns its own
// record list; nothing is shared across conversions.
type Converter struct {
	log    *logging.Logger
	header HeaderOptions
}

type Option func(*Converter)

// WithHeader overrides the ASS header block emitted by the reverse
// drivers.
func WithHeader(h HeaderOptions) Option {
	return func(c *Converter) {
		c.header = h
	}
}

func New(log *logging.Logger, opts ...Option) *Converter {
	c := &Converter{
		log:    log,
		header: DefaultHeader(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// translation/romanization tracks carry no karaoke timing, so the
// duration check does not apply to them
func isAuxiliaryStyle(style string) bool {
	return strings.EqualFold(style, "roma") ||
		strings.EqualFold(style, "trans") ||
		strings.EqualFold(style, "ts")
}

func stripASSTags(text string) string {
	return assTagRe.ReplaceAllString(text, "")
}
