package render

import (
	"fmt"
	"image/color"
	"testing"

	"neoportal/hal"
	"neoportal/ui/layout"
	"neoportal/ui/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type canvas struct {
	w, h     int
	px       []color.RGBA
	displays int
	fills    int
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, px: make([]color.RGBA, w*h)}
}

func (c *canvas) Size() (int16, int16) { return int16(c.w), int16(c.h) }

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || int(x) >= c.w || int(y) >= c.h {
		return
	}
	c.px[int(y)*c.w+int(x)] = col
}

func (c *canvas) Display() error {
	c.displays++
	return nil
}

func (c *canvas) FillRectangle(x, y, w, h int16, col color.RGBA) error {
	c.fills++
	for py := int(y); py < int(y+h); py++ {
		for px := int(x); px < int(x+w); px++ {
			c.SetPixel(int16(px), int16(py), col)
		}
	}
	return nil
}

func (c *canvas) at(x, y int) color.RGBA { return c.px[y*c.w+x] }

// count returns how many pixels inside r have color col.
func (c *canvas) count(r widget.Rect, col color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.at(x, y) == col {
				n++
			}
		}
	}
	return n
}

var _ hal.Canvas = (*canvas)(nil)

type fixture struct {
	canvas *canvas
	screen *Screen
	reg    *widget.Registry
	tbl    layout.Table
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, nil)
}

// newFixtureWith lets a test edit the table before the screen is built.
func newFixtureWith(t *testing.T, edit func(*layout.Table)) *fixture {
	t.Helper()
	tbl, err := layout.Default(hal.BoardPyPortal, 0)
	require.NoError(t, err)
	if edit != nil {
		edit(&tbl)
	}
	reg, err := layout.Build(tbl)
	require.NoError(t, err)
	c := newCanvas(tbl.Width, tbl.Height)
	return &fixture{canvas: c, screen: New(c, reg, tbl), reg: reg, tbl: tbl}
}

func (f *fixture) show(g widget.Group) {
	other := widget.GroupSensors
	if g == widget.GroupSensors {
		other = widget.GroupNeopixel
	}
	f.screen.SetGroupVisible(other, false)
	f.screen.SetGroupVisible(g, true)
}

// bodyPixel is a point inside b's border, clear of the centered label.
func bodyPixel(b *widget.Button) (int, int) {
	return b.Region.Min.X + 2, b.Region.Min.Y + b.Region.Dy()/2
}

func TestFirstFlushPaintsVisibleGroup(t *testing.T) {
	f := newFixture(t)
	f.show(widget.GroupNeopixel)
	require.NoError(t, f.screen.Flush())
	assert.Equal(t, 1, f.canvas.displays)

	for _, b := range f.reg.Buttons() {
		x, y := bodyPixel(b)
		assert.Equal(t, b.Theme.Fill, f.canvas.at(x, y), b.Name)
		assert.Equal(t, b.Theme.Outline, f.canvas.at(b.Region.Min.X, y), b.Name)
	}
}

func noText(tbl *layout.Table) {
	tbl.Title.Text = ""
	tbl.Description.Text = ""
}

func TestHiddenGroupIsNotDrawn(t *testing.T) {
	f := newFixtureWith(t, noText)
	f.show(widget.GroupNeopixel)
	require.NoError(t, f.screen.Flush())

	f.show(widget.GroupSensors)
	require.NoError(t, f.screen.Flush())

	bg := layout.Hex(layout.ScreenBackground)
	for _, b := range f.reg.Buttons() {
		if b.Group != widget.GroupNeopixel {
			continue
		}
		x, y := bodyPixel(b)
		assert.Equal(t, bg, f.canvas.at(x, y), b.Name)
	}
	tab, _ := f.reg.First(widget.RoleTabSensors)
	x, y := bodyPixel(tab)
	assert.Equal(t, tab.Theme.Fill, f.canvas.at(x, y))
}

func TestSelectedButtonUsesSelectedTheme(t *testing.T) {
	f := newFixture(t)
	f.show(widget.GroupNeopixel)
	require.NoError(t, f.screen.Flush())

	red := f.reg.Buttons()[3+4]
	red.Selected = true
	f.screen.SetButtonVisual(red)
	fills := f.canvas.fills
	require.NoError(t, f.screen.Flush())
	assert.Greater(t, f.canvas.fills, fills)

	x, y := bodyPixel(red)
	assert.Equal(t, red.Theme.SelectedFill, f.canvas.at(x, y))
	assert.Equal(t, red.Theme.SelectedOutline, f.canvas.at(red.Region.Min.X, y))
}

func TestButtonOnHiddenGroupIgnored(t *testing.T) {
	f := newFixture(t)
	f.show(widget.GroupSensors)
	require.NoError(t, f.screen.Flush())

	toggle, _ := f.reg.First(widget.RoleToggle)
	toggle.Label = "ON"
	f.screen.SetButtonVisual(toggle)
	fills := f.canvas.fills
	require.NoError(t, f.screen.Flush())
	assert.Equal(t, fills, f.canvas.fills)
	assert.Equal(t, 2, f.canvas.displays)
}

func TestLabelIsDrawn(t *testing.T) {
	f := newFixture(t)
	f.show(widget.GroupNeopixel)
	require.NoError(t, f.screen.Flush())

	tab, _ := f.reg.First(widget.RoleTabNeopixel)
	assert.Positive(t, f.canvas.count(tab.Region, tab.Theme.LabelColor))
}

func TestStatusRepaintedOnChange(t *testing.T) {
	f := newFixtureWith(t, noText)
	f.show(widget.GroupSensors)
	f.screen.SetStatusText("Touch: None\nLight: 1\nTemp: 70°F")
	require.NoError(t, f.screen.Flush())

	st := f.tbl.Status
	area := widget.XYWH(st.X, st.Y, f.tbl.Width-st.X, 3*textFace.lineHeight())
	fg := layout.Hex(layout.Text)
	before := f.canvas.count(area, fg)
	assert.Positive(t, before)

	fills := f.canvas.fills
	f.screen.SetStatusText("Touch: None\nLight: 1\nTemp: 70°F")
	require.NoError(t, f.screen.Flush())
	assert.Equal(t, fills, f.canvas.fills, "unchanged text is not repainted")

	f.screen.SetStatusText("")
	require.NoError(t, f.screen.Flush())
	assert.Zero(t, f.canvas.count(area, fg))
}

// The status block is always three lines: touch, light and temperature.
const statusRows = 3

func TestTextFitsBuiltInTables(t *testing.T) {
	lh := textFace.lineHeight()
	for _, tc := range []struct {
		board    string
		rotation int
	}{
		{hal.BoardPyPortal, 0},
		{hal.BoardPyPortal, 270},
		{hal.BoardTitano, 0},
		{hal.BoardTitano, 270},
	} {
		t.Run(fmt.Sprintf("%s/%d", tc.board, tc.rotation), func(t *testing.T) {
			tbl, err := layout.Default(tc.board, tc.rotation)
			require.NoError(t, err)

			desc := Wrap(tbl.Description.Text, tbl.MaxChars)
			assert.LessOrEqual(t, tbl.Description.Y+len(desc)*lh, tbl.Status.Y, "description runs into the status")
			assert.LessOrEqual(t, tbl.Status.Y+statusRows*lh, tbl.Height, "status runs off the screen")
		})
	}
}

func TestStatusNotDrawnOnNeopixelView(t *testing.T) {
	f := newFixture(t)
	f.show(widget.GroupNeopixel)
	require.NoError(t, f.screen.Flush())

	fills := f.canvas.fills
	f.screen.SetStatusText("Touch: None")
	require.NoError(t, f.screen.Flush())
	assert.Equal(t, fills, f.canvas.fills)
}

func TestWrap(t *testing.T) {
	tbl, err := layout.Default(hal.BoardTitano, 270)
	require.NoError(t, err)
	lines := Wrap(tbl.Description.Text, tbl.MaxChars)
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), tbl.MaxChars, l)
	}

	assert.Nil(t, Wrap("", 10))
	assert.Equal(t, []string{"unbounded text"}, Wrap("unbounded text", 0))
	assert.Equal(t, []string{"abcdefghijkl"}, Wrap("abcdefghijkl", 4))
}

func TestCornerInset(t *testing.T) {
	assert.Equal(t, 10, cornerInset(0, 10))
	assert.Equal(t, 1, cornerInset(9, 10))
	for dy := 1; dy < 10; dy++ {
		assert.LessOrEqual(t, cornerInset(dy, 10), cornerInset(dy-1, 10))
	}
}

func TestFillRectClips(t *testing.T) {
	c := newCanvas(10, 10)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	require.NoError(t, fillRect(c, -5, -5, 8, 8, red))
	assert.Equal(t, red, c.at(0, 0))
	assert.Equal(t, red, c.at(2, 2))
	assert.Equal(t, color.RGBA{}, c.at(3, 3))

	fills := c.fills
	require.NoError(t, fillRect(c, 20, 20, 5, 5, red))
	assert.Equal(t, fills, c.fills)
}
