//go:build !tinygo

package hal

import (
	"fmt"
	"image/color"
	"sync"
	"time"
)

// hostLight simulates the ambient light sensor as a triangle wave so the
// sensor view has something to show.
type hostLight struct {
	mu     sync.Mutex
	t0     time.Time
	now    func() time.Time
	period time.Duration
	lo, hi uint16
}

func newHostLight(period time.Duration, lo, hi uint16) *hostLight {
	return newHostLightWithClock(period, lo, hi, time.Now)
}

func newHostLightWithClock(period time.Duration, lo, hi uint16, now func() time.Time) *hostLight {
	if now == nil {
		now = time.Now
	}
	if period <= 0 {
		period = 10 * time.Second
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return &hostLight{t0: now(), now: now, period: period, lo: lo, hi: hi}
}

func (l *hostLight) Value() uint16 {
	l.mu.Lock()
	defer l.mu.Unlock()

	elapsed := l.now().Sub(l.t0)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	phase := elapsed % l.period
	half := l.period / 2
	span := uint64(l.hi - l.lo)
	if phase < half {
		return l.lo + uint16(span*uint64(phase)/uint64(half))
	}
	return l.hi - uint16(span*uint64(phase-half)/uint64(l.period-half))
}

// hostThermometer stands in for the ADT7410 with a fixed reading.
type hostThermometer struct {
	celsius float32
}

func (t *hostThermometer) Celsius() (float32, bool) { return t.celsius, true }

// hostNeoPixel remembers the last fill so the window can draw it.
type hostNeoPixel struct {
	mu     sync.Mutex
	c      color.RGBA
	logger Logger
}

func (p *hostNeoPixel) Fill(c color.RGBA) error {
	p.mu.Lock()
	p.c = c
	p.mu.Unlock()
	if p.logger != nil {
		p.logger.WriteLineString(fmt.Sprintf("neopixel: fill #%02X%02X%02X", c.R, c.G, c.B))
	}
	return nil
}

func (p *hostNeoPixel) color() color.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.c
}

// emulatedPressure is reported as Z for emulated contact; the emulator has no
// pressure sensing.
const emulatedPressure = 30000

// hostTouch holds the latest contact reported by the window or a script.
type hostTouch struct {
	mu      sync.Mutex
	p       TouchPoint
	touched bool
}

func (t *hostTouch) TouchPoint() (TouchPoint, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p, t.touched
}

func (t *hostTouch) set(p TouchPoint, touched bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p = p
	t.touched = touched
}
