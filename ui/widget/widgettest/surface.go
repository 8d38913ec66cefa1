// Package widgettest provides a recording widget.Surface for tests.
package widgettest

import "neoportal/ui/widget"

// Visual is a snapshot of a button as last pushed to the surface.
type Visual struct {
	Selected bool
	Label    string
}

// Surface records every call it receives.
type Surface struct {
	Groups  map[widget.Group]bool
	Visuals map[*widget.Button]Visual
	Status  string

	StatusUpdates int
	Flushes       int
	// GroupCalls counts SetGroupVisible calls.
	GroupCalls int
}

func New() *Surface {
	return &Surface{
		Groups:  make(map[widget.Group]bool),
		Visuals: make(map[*widget.Button]Visual),
	}
}

func (s *Surface) SetButtonVisual(b *widget.Button) {
	s.Visuals[b] = Visual{Selected: b.Selected, Label: b.Label}
}

func (s *Surface) SetGroupVisible(g widget.Group, visible bool) {
	s.GroupCalls++
	s.Groups[g] = visible
}

func (s *Surface) SetStatusText(text string) {
	s.StatusUpdates++
	s.Status = text
}

func (s *Surface) Flush() error {
	s.Flushes++
	return nil
}
