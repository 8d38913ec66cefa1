//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Taps are replayed in order, one press-release cycle each.
	Taps []Tap
}

// Tap is a scripted touch: held at (X, Y) for Hold ticks, then released for
// Gap ticks.
type Tap struct {
	X, Y int
	Hold int
	Gap  int
}

const (
	defaultTapHold = 6
	defaultTapGap  = 6
)

// ParseTap parses "x,y" or "x,y,hold".
func ParseTap(s string) (Tap, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) < 2 || len(parts) > 3 {
		return Tap{}, fmt.Errorf("tap %q: want x,y[,hold]", s)
	}
	vals := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Tap{}, fmt.Errorf("tap %q: %w", s, err)
		}
		if v < 0 {
			return Tap{}, fmt.Errorf("tap %q: negative value", s)
		}
		vals[i] = v
	}
	t := Tap{X: vals[0], Y: vals[1], Hold: defaultTapHold, Gap: defaultTapGap}
	if len(vals) == 3 && vals[2] > 0 {
		t.Hold = vals[2]
	}
	return t, nil
}

// tapScript plays taps into a touch panel one tick at a time.
type tapScript struct {
	taps  []Tap
	idx   int
	phase int
}

// step advances one tick and returns the contact to report.
func (s *tapScript) step() (TouchPoint, bool) {
	for s.idx < len(s.taps) {
		t := s.taps[s.idx]
		hold, gap := t.Hold, t.Gap
		if hold <= 0 {
			hold = defaultTapHold
		}
		if gap <= 0 {
			gap = defaultTapGap
		}
		if s.phase < hold {
			s.phase++
			return TouchPoint{X: t.X, Y: t.Y, Z: emulatedPressure}, true
		}
		if s.phase < hold+gap {
			s.phase++
			return TouchPoint{}, false
		}
		s.idx++
		s.phase = 0
	}
	return TouchPoint{}, false
}

func (s *tapScript) done() bool { return s.idx >= len(s.taps) }

// RunHeadless runs the controller without opening a window.
func RunHeadless(ctx context.Context, hcfg HostConfig, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	hh, err := NewWithConfig(hcfg)
	if err != nil {
		return err
	}
	h := hh.(*hostHAL)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	script := &tapScript{taps: cfg.Taps}
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			p, touched := script.step()
			h.touch.set(p, touched)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
