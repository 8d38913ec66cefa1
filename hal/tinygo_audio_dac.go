//go:build tinygo && pyportal

package hal

import (
	"machine"
	"time"
)

type dacAudio struct {
	out *dacAudioOut
}

func newDACAudio() Audio {
	return &dacAudio{out: &dacAudioOut{volume: 255}}
}

func (a *dacAudio) PWM() PWMAudio { return a.out }

// dacAudioOut plays samples on the speaker DAC (A0), pacing each write to the
// sample rate. Writes block; cues are short.
type dacAudioOut struct {
	period time.Duration
	next   time.Time

	volume  uint8
	started bool
}

func (a *dacAudioOut) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return ErrNotImplemented
	}
	machine.DAC0.Configure(machine.DACConfig{})
	enable := machine.SPEAKER_ENABLE
	enable.Configure(machine.PinConfig{Mode: machine.PinOutput})
	enable.High()

	a.period = time.Second / time.Duration(sampleRate)
	a.next = time.Now()
	a.started = true
	return nil
}

func (a *dacAudioOut) Stop() error {
	if !a.started {
		return nil
	}
	machine.DAC0.Set(0x8000)
	machine.SPEAKER_ENABLE.Low()
	a.started = false
	return nil
}

func (a *dacAudioOut) SetVolume(vol uint8) {
	a.volume = vol
}

func (a *dacAudioOut) WriteSample(sample int16) {
	if !a.started {
		return
	}
	now := time.Now()
	if a.next.Before(now) {
		a.next = now
	}
	for time.Now().Before(a.next) {
	}
	a.next = a.next.Add(a.period)

	s := int32(sample) * int32(a.volume) / 255
	machine.DAC0.Set(uint16(s + 32768))
}
