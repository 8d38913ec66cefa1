// Package widget holds the on-screen buttons and the ordered registry used
// for hit-testing.
package widget

import "image/color"

// Point is a position in screen coordinates.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned region; Min is inclusive, Max is exclusive.
type Rect struct {
	Min, Max Point
}

// XYWH builds a Rect from an origin and a size.
func XYWH(x, y, w, h int) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

func (r Rect) Dx() int { return r.Max.X - r.Min.X }
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether r and s share any pixel.
func (r Rect) Overlaps(s Rect) bool {
	if r.Empty() || s.Empty() {
		return false
	}
	return r.Min.X < s.Max.X && s.Min.X < r.Max.X && r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Role is what a button does when pressed.
type Role uint8

const (
	RoleTabNeopixel Role = iota + 1
	RoleTabSensors
	RoleToggle
	// RoleColor buttons carry their payload in Button.Color.
	RoleColor
)

func (r Role) String() string {
	switch r {
	case RoleTabNeopixel:
		return "tab-neopixel"
	case RoleTabSensors:
		return "tab-sensors"
	case RoleToggle:
		return "toggle"
	case RoleColor:
		return "color"
	default:
		return "unknown"
	}
}

// Group is the widget group a button is drawn in.
type Group uint8

const (
	// GroupShared is always on screen (the tab bar).
	GroupShared Group = iota
	GroupNeopixel
	GroupSensors
)

// Style selects the button outline shape.
type Style uint8

const (
	StyleRect Style = iota
	StyleRoundRect
)

// Theme holds the colors a button is painted with.
type Theme struct {
	Fill            color.RGBA
	Outline         color.RGBA
	LabelColor      color.RGBA
	SelectedFill    color.RGBA
	SelectedOutline color.RGBA
	SelectedLabel   color.RGBA
}

// Button is one interactive region.
type Button struct {
	Name   string
	Region Rect
	Role   Role
	Group  Group
	Style  Style
	Theme  Theme

	// Color is the NeoPixel color for RoleColor buttons.
	Color color.RGBA

	Selected bool
	Label    string
}

// Contains reports whether p hits the button.
func (b *Button) Contains(p Point) bool {
	return b.Region.Contains(p)
}

// Surface receives widget state changes. It is implemented by the renderer;
// the controller only ever talks to this contract.
type Surface interface {
	SetButtonVisual(b *Button)
	SetGroupVisible(g Group, visible bool)
	SetStatusText(text string)
	// Flush puts pending changes on the screen.
	Flush() error
}
