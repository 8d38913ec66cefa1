package hal

// Calibration maps raw resistive panel readings to screen coordinates.
type Calibration struct {
	XMin, XMax int
	YMin, YMax int
}

// DefaultCalibration matches the PyPortal panel.
var DefaultCalibration = Calibration{XMin: 5200, XMax: 59000, YMin: 5800, YMax: 57000}

// MinTouchPressure is the smallest Z reading treated as contact.
const MinTouchPressure = 100

// Map converts a raw reading into a point on a width x height screen.
// With rotation 270 the panel axes are swapped and X is mirrored.
func (c Calibration) Map(rawX, rawY int, width, height int, rotation int) (x, y int) {
	if rotation == 270 {
		// The panel keeps its native orientation; the screen is turned.
		nx := scaleAxis(rawY, c.YMin, c.YMax, width)
		ny := scaleAxis(rawX, c.XMin, c.XMax, height)
		return width - 1 - nx, ny
	}
	return scaleAxis(rawX, c.XMin, c.XMax, width), scaleAxis(rawY, c.YMin, c.YMax, height)
}

func scaleAxis(raw, lo, hi, size int) int {
	if size <= 0 {
		return 0
	}
	if hi <= lo {
		return 0
	}
	v := (raw - lo) * size / (hi - lo)
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}
