package lyric

import (
	"bufio"
	"fmt"
)

// visual parameters of the fixed ASS header block written by the
// QRC→ASS and LYS→ASS drivers
type HeaderOptions struct {
	FontName string
	FontSize int
	PlayResX int
	PlayResY int
}

func DefaultHeader() HeaderOptions {
	return HeaderOptions{
		FontName: "微软雅黑",
		FontSize: 100,
		PlayResX: 1920,
		PlayResY: 1440,
	}
}

func (c *Converter) writeASSHeader(w *bufio.Writer) error {
	h := c.header

	if _, err := fmt.Fprintf(w,
		"[Script Info]\nPlayResX: %d\nPlayResY: %d\n\n",
		h.PlayResX, h.PlayResY,
	); err != nil {
		return err
	}

	if _, err := w.WriteString("[V4+ Styles]\n" +
		"Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"Style: Default,%s,%d,&H00FFFFFF,&H004E503F,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,1.5,0.5,2,10,10,60,1\n\n",
		h.FontName, h.FontSize,
	); err != nil {
		return err
	}

	_, err := w.WriteString("[Events]\n" +
		"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	return err
}
