// Package render paints the button registry, the sensor view text and the
// status label onto a hal.Canvas.
package render

import (
	"image/color"
	"strings"

	"neoportal/hal"
	"neoportal/ui/layout"
	"neoportal/ui/widget"

	"github.com/muesli/reflow/wordwrap"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

// face pairs a font with the distance from a line's top to its baseline.
type face struct {
	font   tinyfont.Fonter
	ascent int
}

func (f face) lineHeight() int { return int(f.font.GetYAdvance()) }

var (
	labelFace  = face{font: &freesans.Regular12pt7b, ascent: 17}
	switchFace = face{font: &freesans.Bold18pt7b, ascent: 25}
	titleFace  = face{font: &freesans.Bold12pt7b, ascent: 17}
	textFace   = face{font: &freesans.Regular9pt7b, ascent: 13}
)

// Screen implements widget.Surface. Changes are collected and painted by
// Flush; a group visibility change repaints everything.
type Screen struct {
	canvas hal.Canvas
	reg    *widget.Registry
	tbl    layout.Table

	bg, fg      color.RGBA
	description []string

	visible map[widget.Group]bool
	status  string

	full        bool
	dirty       []*widget.Button
	statusDirty bool
	// statusLines is how many lines the status label covered when last
	// painted.
	statusLines int
}

// New returns a Screen for the buttons of reg laid out per tbl.
func New(c hal.Canvas, reg *widget.Registry, tbl layout.Table) *Screen {
	return &Screen{
		canvas:      c,
		reg:         reg,
		tbl:         tbl,
		bg:          layout.Hex(layout.ScreenBackground),
		fg:          layout.Hex(layout.Text),
		description: Wrap(tbl.Description.Text, tbl.MaxChars),
		visible:     map[widget.Group]bool{widget.GroupShared: true},
		full:        true,
	}
}

// Wrap breaks text on word boundaries so that no line is longer than
// maxChars, unless a single word is.
func Wrap(text string, maxChars int) []string {
	if text == "" {
		return nil
	}
	if maxChars <= 0 {
		return []string{text}
	}
	return strings.Split(wordwrap.String(text, maxChars), "\n")
}

func (s *Screen) SetButtonVisual(b *widget.Button) {
	if s.full || !s.visible[b.Group] {
		return
	}
	for _, d := range s.dirty {
		if d == b {
			return
		}
	}
	s.dirty = append(s.dirty, b)
}

func (s *Screen) SetGroupVisible(g widget.Group, visible bool) {
	if g == widget.GroupShared || s.visible[g] == visible {
		return
	}
	s.visible[g] = visible
	s.full = true
}

func (s *Screen) SetStatusText(text string) {
	if text == s.status {
		return
	}
	s.status = text
	s.statusDirty = true
}

// Visible reports whether group g is currently shown.
func (s *Screen) Visible(g widget.Group) bool { return s.visible[g] }

// Flush paints pending changes and pushes the frame to the display.
func (s *Screen) Flush() error {
	if s.canvas == nil {
		return nil
	}
	if s.full {
		if err := s.repaint(); err != nil {
			return err
		}
	} else {
		for _, b := range s.dirty {
			if err := s.drawButton(b); err != nil {
				return err
			}
		}
		if s.statusDirty && s.visible[widget.GroupSensors] {
			if err := s.drawStatus(); err != nil {
				return err
			}
		}
	}
	s.full = false
	s.dirty = s.dirty[:0]
	s.statusDirty = false
	return s.canvas.Display()
}

func (s *Screen) repaint() error {
	if err := fillRect(s.canvas, 0, 0, s.tbl.Width, s.tbl.Height, s.bg); err != nil {
		return err
	}
	for _, b := range s.reg.Buttons() {
		if !s.visible[b.Group] {
			continue
		}
		if err := s.drawButton(b); err != nil {
			return err
		}
	}
	if !s.visible[widget.GroupSensors] {
		s.statusLines = 0
		return nil
	}

	t := s.tbl.Title
	writeLine(s.canvas, titleFace, t.X, t.Y, t.Text, s.fg)
	y := s.tbl.Description.Y
	for _, line := range s.description {
		writeLine(s.canvas, textFace, s.tbl.Description.X, y, line, s.fg)
		y += textFace.lineHeight()
	}
	s.statusLines = 0
	return s.drawStatus()
}

func (s *Screen) drawButton(b *widget.Button) error {
	r := b.Region
	fill, outline, label := b.Theme.Fill, b.Theme.Outline, b.Theme.LabelColor
	if b.Selected {
		fill, outline, label = b.Theme.SelectedFill, b.Theme.SelectedOutline, b.Theme.SelectedLabel
	}
	if err := box(s.canvas, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), b.Style == widget.StyleRoundRect, fill, outline); err != nil {
		return err
	}
	if b.Label == "" {
		return nil
	}

	f := labelFace
	if b.Role == widget.RoleToggle {
		f = switchFace
	}
	w, _ := tinyfont.LineWidth(f.font, b.Label)
	x := r.Min.X + (r.Dx()-int(w))/2
	y := r.Min.Y + (r.Dy()-f.ascent)/2
	writeLine(s.canvas, f, x, y, b.Label, label)
	return nil
}

// drawStatus clears the old status text and writes the current one.
func (s *Screen) drawStatus() error {
	st := s.tbl.Status
	lines := strings.Split(s.status, "\n")
	h := textFace.lineHeight()

	rows := max(len(lines), s.statusLines)
	if err := fillRect(s.canvas, st.X, st.Y, s.tbl.Width-st.X, rows*h, s.bg); err != nil {
		return err
	}
	y := st.Y
	for _, line := range lines {
		writeLine(s.canvas, textFace, st.X, y, line, s.fg)
		y += h
	}
	s.statusLines = len(lines)
	return nil
}

// writeLine draws text with its top edge at y.
func writeLine(c hal.Canvas, f face, x, y int, text string, col color.RGBA) {
	if text == "" {
		return
	}
	tinyfont.WriteLine(c, f.font, int16(x), int16(y+f.ascent), text, col)
}
