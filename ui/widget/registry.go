package widget

// Registry is the ordered set of buttons. A button's index is fixed for the
// life of the process.
type Registry struct {
	buttons []*Button
}

// NewRegistry takes ownership of buttons in the given order.
func NewRegistry(buttons []*Button) *Registry {
	return &Registry{buttons: buttons}
}

// Buttons returns the buttons in registry order.
func (r *Registry) Buttons() []*Button { return r.buttons }

// First returns the first button with the given role.
func (r *Registry) First(role Role) (*Button, int) {
	for i, b := range r.buttons {
		if b.Role == role {
			return b, i
		}
	}
	return nil, -1
}

// HitTest scans buttons in registry order and returns the first one that
// contains p and whose group is visible. It returns nil, -1 on a miss.
func (r *Registry) HitTest(p Point, visible func(Group) bool) (*Button, int) {
	for i, b := range r.buttons {
		if visible != nil && !visible(b.Group) {
			continue
		}
		if b.Contains(p) {
			return b, i
		}
	}
	return nil, -1
}
