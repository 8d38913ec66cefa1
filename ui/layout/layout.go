// Package layout holds the screen layout tables and turns them into the
// button registry.
package layout

import (
	"errors"
	"fmt"

	"neoportal/hal"
	"neoportal/ui/widget"
)

var (
	ErrGeometry    = errors.New("invalid geometry")
	ErrOutOfBounds = errors.New("button outside screen")
	ErrUnknownRole = errors.New("unknown role")
	ErrMissingRole = errors.New("missing role")
	ErrDuplicate   = errors.New("duplicate role")
	ErrOverlap     = errors.New("overlapping buttons")
)

// Role names used in layout tables.
const (
	RoleTabNeopixel = "tab-neopixel"
	RoleTabSensors  = "tab-sensors"
	RoleToggle      = "toggle"
	RoleColor       = "color"
)

// ButtonSpec is one row of a layout table.
type ButtonSpec struct {
	Name   string `toml:"name"`
	Role   string `toml:"role"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// Fill is 0xRRGGBB. For color buttons it is also the NeoPixel color.
	Fill      uint32 `toml:"fill"`
	Label     string `toml:"label"`
	RoundRect bool   `toml:"round_rect"`
}

// TextSpec positions a text label.
type TextSpec struct {
	X    int    `toml:"x"`
	Y    int    `toml:"y"`
	Text string `toml:"text"`
}

// Table is a complete screen layout.
type Table struct {
	Board    string `toml:"board"`
	Rotation int    `toml:"rotation"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`

	// MaxChars is the wrap width for the sensor view description.
	MaxChars  int     `toml:"max_chars"`
	Backlight float32 `toml:"backlight"`

	Title       TextSpec `toml:"title"`
	Description TextSpec `toml:"description"`
	Status      TextSpec `toml:"status"`

	Buttons []ButtonSpec `toml:"buttons"`
}

const (
	tabsX           = 15
	tabButtonHeight = 60

	description = "This screen displays readings from the built in sensors on the PyPortal: Touch, Light and Temperature."
)

type colorSpec struct {
	name string
	fill uint32
}

var landscapeColors = []colorSpec{
	{"white", White}, {"yellow", Yellow}, {"orange", Orange}, {"green", Green},
	{"red", Red}, {"purple", Purple}, {"blue", Blue}, {"dark_purple", DarkPurple},
}

var portraitColors = []colorSpec{
	{"white", White}, {"yellow", Yellow}, {"orange", Orange},
	{"green", Green}, {"pink", Pink}, {"red", Red},
	{"purple", Purple}, {"blue", Blue}, {"dark_purple", DarkPurple},
}

// grid places color buttons row by row.
type grid struct {
	x0, y0        int
	stepX, stepY  int
	cols          int
	width, height int
	toggleX       int
	toggleY       int
	toggleW       int
	toggleH       int
	statusY       int
	maxChars      int
	backlight     float32
}

func gridFor(board string, rotation int) (grid, error) {
	switch {
	case board == hal.BoardTitano && rotation == 0:
		return grid{x0: 10, y0: 155, stepX: 120, stepY: 85, cols: 4, width: 100, height: 75,
			toggleX: 130, toggleY: 75, toggleW: 220, toggleH: 65, statusY: 215, maxChars: 50, backlight: 1}, nil
	case board == hal.BoardTitano && rotation == 270:
		return grid{x0: 15, y0: 165, stepX: 100, stepY: 100, cols: 3, width: 90, height: 90,
			toggleX: 50, toggleY: 75, toggleW: 220, toggleH: 65, statusY: 265, maxChars: 32, backlight: 1}, nil
	case board == hal.BoardPyPortal && rotation == 0:
		return grid{x0: 10, y0: 125, stepX: 76, stepY: 57, cols: 4, width: 70, height: 50,
			toggleX: 60, toggleY: 68, toggleW: 200, toggleH: 45, statusY: 172, maxChars: 30, backlight: 0.3}, nil
	case board == hal.BoardPyPortal && rotation == 270:
		return grid{x0: 10, y0: 125, stepX: 77, stepY: 63, cols: 3, width: 70, height: 55,
			toggleX: 20, toggleY: 68, toggleW: 200, toggleH: 45, statusY: 240, maxChars: 22, backlight: 0.3}, nil
	default:
		return grid{}, fmt.Errorf("layout: no table for board %q rotation %d", board, rotation)
	}
}

// Default returns the built-in table for a board and rotation.
func Default(board string, rotation int) (Table, error) {
	b, err := hal.BoardFor(board, rotation)
	if err != nil {
		return Table{}, fmt.Errorf("layout: %w", err)
	}
	g, err := gridFor(b.Name, rotation)
	if err != nil {
		return Table{}, err
	}

	t := Table{
		Board:       b.Name,
		Rotation:    rotation,
		Width:       b.Width,
		Height:      b.Height,
		MaxChars:    g.maxChars,
		Backlight:   g.backlight,
		Title:       TextSpec{X: tabsX, Y: tabButtonHeight + 4, Text: "Data View"},
		Description: TextSpec{X: tabsX, Y: tabButtonHeight + 24},
		Status:      TextSpec{X: tabsX * 3, Y: g.statusY},
	}
	t.Description.Text = description

	tabW := b.Width / 2
	t.Buttons = append(t.Buttons,
		ButtonSpec{Name: "neopixel", Role: RoleTabNeopixel, X: 0, Y: 0, Width: tabW, Height: tabButtonHeight, Fill: SelectedBg, Label: "Neo Pixel"},
		ButtonSpec{Name: "sensors", Role: RoleTabSensors, X: tabW, Y: 0, Width: tabW, Height: tabButtonHeight, Fill: SelectedBg, Label: "Sensors"},
		ButtonSpec{Name: "Light Switch", Role: RoleToggle, X: g.toggleX, Y: g.toggleY, Width: g.toggleW, Height: g.toggleH, Fill: SelectedBg, RoundRect: true},
	)

	colors := landscapeColors
	if rotation == 270 {
		colors = portraitColors
	}
	for i, c := range colors {
		col, row := i%g.cols, i/g.cols
		t.Buttons = append(t.Buttons, ButtonSpec{
			Name:      c.name,
			Role:      RoleColor,
			X:         g.x0 + col*g.stepX,
			Y:         g.y0 + row*g.stepY,
			Width:     g.width,
			Height:    g.height,
			Fill:      c.fill,
			RoundRect: true,
		})
	}
	return t, nil
}

// Build validates t and returns the registry in table order.
func Build(t Table) (*widget.Registry, error) {
	if t.Width <= 0 || t.Height <= 0 {
		return nil, fmt.Errorf("layout: screen %dx%d: %w", t.Width, t.Height, ErrGeometry)
	}

	counts := make(map[widget.Role]int)
	buttons := make([]*widget.Button, 0, len(t.Buttons))
	for i, spec := range t.Buttons {
		b, err := buildButton(spec)
		if err != nil {
			return nil, fmt.Errorf("layout: button #%d (%s): %w", i, spec.Name, err)
		}
		if b.Region.Min.X < 0 || b.Region.Min.Y < 0 || b.Region.Max.X > t.Width || b.Region.Max.Y > t.Height {
			return nil, fmt.Errorf("layout: button #%d (%s): %w", i, spec.Name, ErrOutOfBounds)
		}
		counts[b.Role]++
		buttons = append(buttons, b)
	}

	for _, role := range []widget.Role{widget.RoleTabNeopixel, widget.RoleTabSensors, widget.RoleToggle} {
		switch counts[role] {
		case 0:
			return nil, fmt.Errorf("layout: %s: %w", role, ErrMissingRole)
		case 1:
		default:
			return nil, fmt.Errorf("layout: %s: %w", role, ErrDuplicate)
		}
	}
	if counts[widget.RoleColor] == 0 {
		return nil, fmt.Errorf("layout: %s: %w", widget.RoleColor, ErrMissingRole)
	}

	for i, a := range buttons {
		for j := i + 1; j < len(buttons); j++ {
			b := buttons[j]
			if !shareScreen(a.Group, b.Group) {
				continue
			}
			if a.Region.Overlaps(b.Region) {
				return nil, fmt.Errorf("layout: #%d (%s) and #%d (%s): %w", i, a.Name, j, b.Name, ErrOverlap)
			}
		}
	}
	return widget.NewRegistry(buttons), nil
}

// shareScreen reports whether buttons in groups a and b can be visible at
// the same time.
func shareScreen(a, b widget.Group) bool {
	return a == b || a == widget.GroupShared || b == widget.GroupShared
}

func buildButton(spec ButtonSpec) (*widget.Button, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("size %dx%d: %w", spec.Width, spec.Height, ErrGeometry)
	}
	b := &widget.Button{
		Name:   spec.Name,
		Region: widget.XYWH(spec.X, spec.Y, spec.Width, spec.Height),
		Label:  spec.Label,
	}
	if spec.RoundRect {
		b.Style = widget.StyleRoundRect
	}
	fill := Hex(spec.Fill)

	switch spec.Role {
	case RoleTabNeopixel, RoleTabSensors:
		b.Role = widget.RoleTabNeopixel
		if spec.Role == RoleTabSensors {
			b.Role = widget.RoleTabSensors
		}
		b.Group = widget.GroupShared
		b.Theme = widget.Theme{
			Fill:            fill,
			Outline:         Hex(Outline),
			LabelColor:      Hex(White),
			SelectedFill:    Hex(Gray),
			SelectedOutline: Hex(SelectedOutline),
			SelectedLabel:   Hex(Background),
		}
	case RoleToggle:
		b.Role = widget.RoleToggle
		b.Group = widget.GroupNeopixel
		b.Theme = widget.Theme{
			Fill:            fill,
			Outline:         Hex(Outline),
			LabelColor:      Hex(Text),
			SelectedFill:    Hex(Gray),
			SelectedOutline: Hex(SelectedOutline),
			SelectedLabel:   Hex(Outline),
		}
	case RoleColor:
		b.Role = widget.RoleColor
		b.Group = widget.GroupNeopixel
		b.Color = fill
		b.Theme = widget.Theme{
			Fill:            fill,
			Outline:         Hex(Black),
			LabelColor:      Hex(Black),
			SelectedFill:    invert(fill),
			SelectedOutline: Hex(White),
			SelectedLabel:   Hex(White),
		}
	default:
		return nil, fmt.Errorf("%q: %w", spec.Role, ErrUnknownRole)
	}
	return b, nil
}
