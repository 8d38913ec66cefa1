//go:build tinygo

package hal

import "image/color"

// serialLogger writes CRLF-terminated lines to the console port.
type serialLogger struct {
	out interface{ WriteByte(c byte) error }
}

func (l *serialLogger) WriteLineString(s string) {
	if l.out == nil {
		println(s)
		return
	}
	for i := 0; i < len(s); i++ {
		_ = l.out.WriteByte(s[i])
	}
	_ = l.out.WriteByte('\r')
	_ = l.out.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

// stubCanvas stands in when no panel could be initialized.
type stubCanvas struct {
	w, h int16
}

func (c *stubCanvas) Size() (x, y int16)                  { return c.w, c.h }
func (c *stubCanvas) SetPixel(x, y int16, col color.RGBA) {}
func (c *stubCanvas) Display() error                      { return nil }

func (c *stubCanvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	return nil
}

type stubDisplay struct {
	canvas *stubCanvas
}

func (d stubDisplay) Canvas() Canvas             { return d.canvas }
func (d stubDisplay) SetBacklight(level float32) {}

type stubTouch struct{}

func (stubTouch) TouchPoint() (TouchPoint, bool) { return TouchPoint{}, false }

type stubLight struct{}

func (stubLight) Value() uint16 { return 0 }

type stubNeoPixel struct{}

func (stubNeoPixel) Fill(c color.RGBA) error { return ErrNotImplemented }

type stubAudio struct{}

func (stubAudio) PWM() PWMAudio { return nil }
