//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// pollPointer feeds the left mouse button, or the first finger on a touch
// screen, into the emulated touch panel.
func (t *hostTouch) pollPointer(width, height int) {
	x, y, ok := 0, 0, false
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		ok = true
	} else if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
		ok = true
	}
	if ok && (x < 0 || y < 0 || x >= width || y >= height) {
		ok = false
	}
	if !ok {
		t.set(TouchPoint{}, false)
		return
	}
	t.set(TouchPoint{X: x, Y: y, Z: emulatedPressure}, true)
}
