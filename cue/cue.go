// Package cue plays the short audio feedback sounds.
package cue

import (
	"fmt"

	"neoportal/hal"
)

// ID names a cue.
type ID uint8

const (
	TabSwitch ID = iota + 1
	Beep
)

func (id ID) String() string {
	switch id {
	case TabSwitch:
		return "tab"
	case Beep:
		return "beep"
	default:
		return fmt.Sprintf("cue(%d)", uint8(id))
	}
}

// SampleRate is the rate cues are synthesized at.
const SampleRate = 22050

const amplitude = 12000

type tone struct {
	hz int
	ms int
}

var cues = map[ID][]tone{
	TabSwitch: {{hz: 880, ms: 40}, {hz: 1320, ms: 50}},
	Beep:      {{hz: 1760, ms: 60}},
}

// Player synthesizes cues into the PWM audio sink. Without audio hardware
// every Play is a no-op.
type Player struct {
	out hal.PWMAudio
	log hal.Logger
}

// NewPlayer starts the audio sink. Failure to start is logged and leaves the
// player silent.
func NewPlayer(a hal.Audio, log hal.Logger) *Player {
	p := &Player{log: log}
	if a == nil {
		return p
	}
	out := a.PWM()
	if out == nil {
		return p
	}
	if err := out.Start(SampleRate); err != nil {
		if log != nil {
			log.WriteLineString(fmt.Sprintf("cue: audio start: %v", err))
		}
		return p
	}
	p.out = out
	return p
}

// Enabled reports whether cues reach a speaker.
func (p *Player) Enabled() bool { return p != nil && p.out != nil }

// Play writes the whole cue to the sink and returns.
func (p *Player) Play(id ID) {
	if !p.Enabled() {
		return
	}
	synth(id, SampleRate, p.out.WriteSample)
}

// synth emits a square wave per tone with a short linear fade at the end of
// each tone to avoid clicks.
func synth(id ID, sampleRate int, emit func(int16)) {
	for _, t := range cues[id] {
		n := sampleRate * t.ms / 1000
		half := sampleRate / (2 * t.hz)
		if half <= 0 {
			half = 1
		}
		fade := n / 5
		for i := 0; i < n; i++ {
			a := amplitude
			if left := n - i; fade > 0 && left < fade {
				a = a * left / fade
			}
			if (i/half)%2 == 1 {
				a = -a
			}
			emit(int16(a))
		}
	}
}
