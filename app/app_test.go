package app

import (
	"image/color"
	"strings"
	"sync"
	"testing"
	"time"

	"neoportal/hal"
	"neoportal/ui/layout"
	"neoportal/ui/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCanvas struct {
	mu       sync.Mutex
	w, h     int16
	lastFill color.RGBA
	displays int
}

func (c *testCanvas) Size() (int16, int16)              { return c.w, c.h }
func (c *testCanvas) SetPixel(int16, int16, color.RGBA) {}

func (c *testCanvas) Display() error {
	c.mu.Lock()
	c.displays++
	c.mu.Unlock()
	return nil
}

func (c *testCanvas) FillRectangle(x, y, w, h int16, col color.RGBA) error {
	c.mu.Lock()
	c.lastFill = col
	c.mu.Unlock()
	return nil
}

type testDisplay struct {
	canvas    *testCanvas
	backlight float32
}

func (d *testDisplay) Canvas() hal.Canvas         { return d.canvas }
func (d *testDisplay) SetBacklight(level float32) { d.backlight = level }

// testTouch replays samples and then reports no contact.
type testTouch struct {
	mu      sync.Mutex
	samples []hal.TouchPoint
	polls   int
}

func (t *testTouch) TouchPoint() (hal.TouchPoint, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.polls++
	if len(t.samples) == 0 {
		return hal.TouchPoint{}, false
	}
	p := t.samples[0]
	t.samples = t.samples[1:]
	return p, true
}

func (t *testTouch) drained() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.samples) == 0 && t.polls > 0
}

type testLight struct{ panics bool }

func (l testLight) Value() uint16 {
	if l.panics {
		panic("adc fault")
	}
	return 100
}

type testLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLogger) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
}

func (l *testLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *testLogger) text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}

type testNeoPixel struct{}

func (testNeoPixel) Fill(color.RGBA) error { return nil }

type testHAL struct {
	board hal.Board
	disp  *testDisplay
	touch *testTouch
	light testLight
	log   *testLogger
}

func newTestHAL(t *testing.T) *testHAL {
	t.Helper()
	board, err := hal.BoardFor(hal.BoardPyPortal, 0)
	require.NoError(t, err)
	return &testHAL{
		board: board,
		disp:  &testDisplay{canvas: &testCanvas{w: int16(board.Width), h: int16(board.Height)}},
		touch: &testTouch{},
		log:   &testLogger{},
	}
}

func (h *testHAL) Board() hal.Board             { return h.board }
func (h *testHAL) Logger() hal.Logger           { return h.log }
func (h *testHAL) Display() hal.Display         { return h.disp }
func (h *testHAL) Touch() hal.Touch             { return h.touch }
func (h *testHAL) Light() hal.LightSensor       { return h.light }
func (h *testHAL) Temperature() hal.Thermometer { return nil }
func (h *testHAL) CPUTemperature() float32      { return 20 }
func (h *testHAL) NeoPixel() hal.NeoPixel       { return testNeoPixel{} }
func (h *testHAL) Audio() hal.Audio             { return nil }

func waitDone(t *testing.T, host *Host) {
	t.Helper()
	host.Stop()
	require.Eventually(t, func() bool {
		host.mu.Lock()
		defer host.mu.Unlock()
		return host.done
	}, time.Second, time.Millisecond)
}

func TestHostSwitchesView(t *testing.T) {
	h := newTestHAL(t)
	h.touch.samples = []hal.TouchPoint{{X: 80, Y: 30, Z: 500}, {X: 80, Y: 30, Z: 500}}

	host, err := Start(h, Config{PollInterval: time.Millisecond})
	require.NoError(t, err)
	require.Eventually(t, h.touch.drained, time.Second, time.Millisecond)
	waitDone(t, host)

	require.NoError(t, host.Step())
	assert.Equal(t, view.Neopixel, host.State().View)
	assert.False(t, host.State().SwitchOn)
	assert.Contains(t, h.log.text(), "View 1 On")
	assert.Equal(t, float32(0.3), h.disp.backlight)
}

func TestHostReportsPanic(t *testing.T) {
	h := newTestHAL(t)
	h.light = testLight{panics: true}

	step := NewWithConfig(h, Config{})
	require.Eventually(t, func() bool { return step() != nil }, time.Second, time.Millisecond)
	assert.ErrorContains(t, step(), "adc fault")

	assert.Contains(t, h.log.text(), "NeoPortal Panic:")
	h.disp.canvas.mu.Lock()
	defer h.disp.canvas.mu.Unlock()
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, h.disp.canvas.lastFill)
	assert.Positive(t, h.disp.canvas.displays)
}

func TestLayoutMustMatchScreen(t *testing.T) {
	h := newTestHAL(t)
	tbl, err := layout.Default(hal.BoardTitano, 0)
	require.NoError(t, err)

	_, err = Start(h, Config{Layout: &tbl})
	require.ErrorContains(t, err, "480x320")

	step := NewWithConfig(h, Config{Layout: &tbl})
	require.Error(t, step())
}

func TestCustomLayout(t *testing.T) {
	h := newTestHAL(t)
	tbl, err := layout.Default(hal.BoardPyPortal, 0)
	require.NoError(t, err)
	tbl.Backlight = 2

	host, err := Start(h, Config{Layout: &tbl})
	require.NoError(t, err)
	waitDone(t, host)
	assert.Equal(t, float32(1), h.disp.backlight)
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	assert.Equal(t, "hé", p)
	assert.Equal(t, "llo", r)

	p, r = takeRunes("ab", 5)
	assert.Equal(t, "ab", p)
	assert.Empty(t, r)
}
