// Package view switches between the two mutually exclusive screens.
package view

import (
	"fmt"

	"neoportal/ui/widget"
)

// ID names a view.
type ID uint8

const (
	Neopixel ID = iota + 1
	Sensors
)

func (id ID) String() string {
	switch id {
	case Neopixel:
		return "neopixel"
	case Sensors:
		return "sensors"
	default:
		return fmt.Sprintf("view(%d)", uint8(id))
	}
}

// Number is the 1-based view number used in log lines.
func (id ID) Number() int { return int(id) }

// Group is the widget group holding the view's widgets.
func (id ID) Group() widget.Group {
	switch id {
	case Neopixel:
		return widget.GroupNeopixel
	case Sensors:
		return widget.GroupSensors
	default:
		return widget.GroupShared
	}
}

func (id ID) other() ID {
	if id == Neopixel {
		return Sensors
	}
	return Neopixel
}

// Manager tracks the active view and keeps group visibility and tab
// selection in step with it.
//
// Tabs use an inverted selection convention: the tab of the view that is NOT
// showing is selected, meaning "tap to switch here".
type Manager struct {
	surface widget.Surface
	tabs    map[ID]*widget.Button
	current ID
}

// NewManager binds the tab buttons for both views. Nothing is shown until
// the first Activate.
func NewManager(s widget.Surface, neopixelTab, sensorsTab *widget.Button) (*Manager, error) {
	if s == nil {
		return nil, fmt.Errorf("view: nil surface")
	}
	if neopixelTab == nil || sensorsTab == nil {
		return nil, fmt.Errorf("view: both tab buttons are required")
	}
	return &Manager{
		surface: s,
		tabs: map[ID]*widget.Button{
			Neopixel: neopixelTab,
			Sensors:  sensorsTab,
		},
	}, nil
}

// Current returns the active view, or 0 before the first Activate.
func (m *Manager) Current() ID { return m.current }

// Visible reports whether widgets of group g are on screen.
func (m *Manager) Visible(g widget.Group) bool {
	if g == widget.GroupShared {
		return true
	}
	return m.current != 0 && m.current.Group() == g
}

// Activate shows id and hides the other view. It does not check whether id
// is already current; callers skip redundant switches themselves.
func (m *Manager) Activate(id ID) {
	if id != Neopixel && id != Sensors {
		return
	}
	other := id.other()

	m.surface.SetGroupVisible(other.Group(), false)
	m.surface.SetGroupVisible(id.Group(), true)

	m.tabs[id].Selected = false
	m.tabs[other].Selected = true
	m.surface.SetButtonVisual(m.tabs[id])
	m.surface.SetButtonVisual(m.tabs[other])

	m.current = id
}
