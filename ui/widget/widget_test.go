package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := XYWH(10, 20, 100, 75)
	require.True(t, r.Contains(Point{X: 10, Y: 20}))
	require.True(t, r.Contains(Point{X: 109, Y: 94}))
	require.False(t, r.Contains(Point{X: 110, Y: 20}), "max edge is exclusive")
	require.False(t, r.Contains(Point{X: 10, Y: 95}))
	require.False(t, r.Contains(Point{X: 9, Y: 50}))
}

func TestRectOverlaps(t *testing.T) {
	a := XYWH(0, 0, 10, 10)
	require.True(t, a.Overlaps(XYWH(9, 9, 5, 5)))
	require.False(t, a.Overlaps(XYWH(10, 0, 5, 5)), "touching edges do not overlap")
	require.False(t, a.Overlaps(XYWH(3, 3, 0, 5)), "empty rects never overlap")
}

func TestRegistryHitTestFirstMatch(t *testing.T) {
	tab := &Button{Name: "tab", Region: XYWH(0, 0, 100, 60), Role: RoleTabNeopixel, Group: GroupShared}
	hidden := &Button{Name: "hidden", Region: XYWH(0, 100, 100, 75), Role: RoleColor, Group: GroupNeopixel}
	under := &Button{Name: "under", Region: XYWH(0, 100, 100, 75), Role: RoleColor, Group: GroupSensors}
	second := &Button{Name: "second", Region: XYWH(50, 0, 100, 60), Role: RoleTabSensors, Group: GroupShared}
	r := NewRegistry([]*Button{tab, hidden, under, second})

	onlySensors := func(g Group) bool { return g == GroupShared || g == GroupSensors }

	b, i := r.HitTest(Point{X: 10, Y: 120}, onlySensors)
	require.Same(t, under, b)
	require.Equal(t, 2, i)

	b, i = r.HitTest(Point{X: 60, Y: 10}, onlySensors)
	require.Same(t, tab, b, "first match in registry order wins")
	require.Equal(t, 0, i)

	b, i = r.HitTest(Point{X: 300, Y: 300}, onlySensors)
	require.Nil(t, b)
	require.Equal(t, -1, i)

	b, _ = r.HitTest(Point{X: 10, Y: 120}, nil)
	require.Same(t, hidden, b)
}

func TestRegistryFirst(t *testing.T) {
	toggle := &Button{Role: RoleToggle}
	r := NewRegistry([]*Button{{Role: RoleTabNeopixel}, toggle})

	b, i := r.First(RoleToggle)
	require.Same(t, toggle, b)
	require.Equal(t, 1, i)

	b, i = r.First(RoleColor)
	require.Nil(t, b)
	require.Equal(t, -1, i)

	require.Same(t, toggle, r.Buttons()[1])
	require.Len(t, r.Buttons(), 2)
}
