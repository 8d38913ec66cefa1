//go:build !tinygo

package hal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTap(t *testing.T) {
	tap, err := ParseTap("10, 20")
	require.NoError(t, err)
	require.Equal(t, Tap{X: 10, Y: 20, Hold: defaultTapHold, Gap: defaultTapGap}, tap)

	tap, err = ParseTap("5,6,30")
	require.NoError(t, err)
	require.Equal(t, 30, tap.Hold)

	for _, bad := range []string{"", "1", "1,2,3,4", "a,2", "-1,2"} {
		_, err := ParseTap(bad)
		require.Error(t, err, bad)
	}
}

func TestTapScriptStep(t *testing.T) {
	s := &tapScript{taps: []Tap{{X: 1, Y: 2, Hold: 2, Gap: 1}, {X: 3, Y: 4, Hold: 1, Gap: 1}}}

	var got []bool
	var xs []int
	for i := 0; i < 7; i++ {
		p, ok := s.step()
		got = append(got, ok)
		xs = append(xs, p.X)
	}
	require.Equal(t, []bool{true, true, false, true, false, false, false}, got)
	require.Equal(t, []int{1, 1, 0, 3, 0, 0, 0}, xs)
	require.True(t, s.done())
}
