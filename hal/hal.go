package hal

import (
	"errors"
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Canvas is a drawing surface. It is a tinygo drivers.Displayer, so tinyfont
// can render straight onto it.
type Canvas interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Display provides the drawing surface and backlight control.
type Display interface {
	Canvas() Canvas
	// SetBacklight sets the brightness, 0 is off and 1 is full.
	SetBacklight(level float32)
}

// TouchPoint is a calibrated touch sample in screen coordinates. Z is the
// contact pressure as reported by the panel.
type TouchPoint struct {
	X, Y, Z int
}

// Touch is a touch panel. TouchPoint never blocks; ok is false while
// nothing is in contact.
type Touch interface {
	TouchPoint() (p TouchPoint, ok bool)
}

// LightSensor is an analog ambient light sensor.
type LightSensor interface {
	Value() uint16
}

// Thermometer reads a dedicated temperature sensor in degrees Celsius.
type Thermometer interface {
	Celsius() (c float32, ok bool)
}

// NeoPixel drives the addressable status light.
type NeoPixel interface {
	Fill(c color.RGBA) error
}

// PWMAudio is a mono 16-bit sample sink.
type PWMAudio interface {
	Start(sampleRate uint32) error
	Stop() error
	SetVolume(vol uint8)
	WriteSample(sample int16)
}

// Audio provides access to audio outputs (if available).
type Audio interface {
	PWM() PWMAudio
}

// Board describes the hardware the HAL runs on.
type Board struct {
	Name   string
	Width  int
	Height int
	// Rotation is 0 for landscape or 270 for portrait.
	Rotation int
}

const (
	BoardPyPortal = "pyportal"
	BoardTitano   = "pyportal_titano"
)

// HAL provides the only contact point between the controller and the outside world.
type HAL interface {
	Board() Board
	Logger() Logger
	Display() Display
	Touch() Touch
	Light() LightSensor
	// Temperature returns nil when no temperature sensor is fitted.
	Temperature() Thermometer
	// CPUTemperature is the on-chip reading used when Temperature is nil.
	CPUTemperature() float32
	NeoPixel() NeoPixel
	Audio() Audio
}

// ClampBacklight limits a backlight level to [0, 1].
func ClampBacklight(level float32) float32 {
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}

// BoardFor returns the screen geometry for a board name and rotation.
func BoardFor(name string, rotation int) (Board, error) {
	if name == "" {
		name = BoardPyPortal
	}
	var w, h int
	switch name {
	case BoardPyPortal:
		w, h = 320, 240
	case BoardTitano:
		w, h = 480, 320
	default:
		return Board{}, fmt.Errorf("hal: unknown board %q", name)
	}
	switch rotation {
	case 0:
	case 270:
		w, h = h, w
	default:
		return Board{}, fmt.Errorf("hal: unsupported rotation %d", rotation)
	}
	return Board{Name: name, Width: w, Height: h, Rotation: rotation}, nil
}
