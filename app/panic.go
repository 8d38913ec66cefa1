package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"neoportal/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// showFatal logs v with the current stack and paints it on the screen,
// black on white, wrapped to the screen width.
func showFatal(h hal.HAL, v any) {
	lines := []string{"NeoPortal Panic:", fmt.Sprintf("panic: %v", v)}
	if stack := debug.Stack(); len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	c := disp.Canvas()
	if c == nil {
		return
	}
	drawFatal(c, lines)
}

func drawFatal(c hal.Canvas, lines []string) {
	font := &proggy.TinySZ8pt7b
	fontHeight := int16(font.GetYAdvance())
	fontOffset := fontHeight - 3
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)

	maxW, maxH := c.Size()
	_ = c.FillRectangle(0, 0, maxW, maxH, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = c.Display()
		return
	}

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	cols := maxW / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > maxH {
				_ = c.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(c, font, fontWidth, fontOffset, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = c.Display()
}

func drawTextLine(
	d hal.Canvas,
	font tinyfont.Fonter,
	fontWidth, fontOffset int16,
	x0, y0 int16,
	s string,
	fg color.RGBA,
) {
	var drawX = x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, drawX, y0+fontOffset, r, fg)
		drawX += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
