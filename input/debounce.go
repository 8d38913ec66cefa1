// Package input turns raw touch samples into one press per physical touch.
package input

import (
	"time"

	"neoportal/hal"
)

// Source is a raw, non-blocking touch reader.
type Source interface {
	TouchPoint() (hal.TouchPoint, bool)
}

// Debouncer wraps a touch source. After a press is acted on, WaitForRelease
// holds the caller until the finger lifts, so a sustained touch produces a
// single logical press no matter how often the panel is sampled.
type Debouncer struct {
	src      Source
	interval time.Duration
	sleep    func(time.Duration)
}

// New returns a Debouncer. pollInterval is slept between samples while
// waiting for release; zero spins, which is what the device wants.
func New(src Source, pollInterval time.Duration) *Debouncer {
	return &Debouncer{src: src, interval: pollInterval, sleep: time.Sleep}
}

// Poll samples the panel once.
func (d *Debouncer) Poll() (hal.TouchPoint, bool) {
	if d.src == nil {
		return hal.TouchPoint{}, false
	}
	return d.src.TouchPoint()
}

// WaitForRelease blocks until the panel reports no contact. It returns at
// once if the contact already ended. There is no timeout: a panel stuck in
// the touched state hangs the caller.
func (d *Debouncer) WaitForRelease() {
	for {
		if _, touched := d.Poll(); !touched {
			return
		}
		if d.interval > 0 {
			d.sleep(d.interval)
		}
	}
}
