//go:build !tinygo && cgo

package hal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hostAudio plays controller cues on desktop via Ebiten's audio package.
type hostAudio struct {
	pwm *hostPWMAudio
}

func newHostAudio() hostAudio {
	return hostAudio{pwm: &hostPWMAudio{vol: 255}}
}

func (a hostAudio) PWM() PWMAudio { return a.pwm }

// hostPWMAudio streams queued cue samples through one long-lived player.
type hostPWMAudio struct {
	mu         sync.Mutex
	player     *audio.Player
	queue      *cueQueue
	sampleRate uint32
	vol        uint8
}

// Start opens the player. Starting again at the same rate keeps the running
// player; Ebiten fixes the context rate for the life of the process.
func (a *hostPWMAudio) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return errors.New("host audio: invalid sample rate")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.player != nil && a.sampleRate == sampleRate {
		return nil
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(sampleRate))
	} else if ctx.SampleRate() != int(sampleRate) {
		return fmt.Errorf("host audio: context runs at %d Hz, cue wants %d Hz", ctx.SampleRate(), sampleRate)
	}

	if a.player != nil {
		_ = a.player.Close()
		a.player = nil
	}

	// One second holds any cue with room to spare.
	q := newCueQueue(int(sampleRate))
	p, err := ctx.NewPlayer(q)
	if err != nil {
		return err
	}
	p.SetBufferSize(50 * time.Millisecond)
	p.SetVolume(float64(a.vol) / 255.0)
	p.Play()

	a.player = p
	a.queue = q
	a.sampleRate = sampleRate
	return nil
}

func (a *hostPWMAudio) Stop() error {
	a.mu.Lock()
	p, q := a.player, a.queue
	a.player, a.queue = nil, nil
	a.mu.Unlock()

	if q != nil {
		q.reset()
	}
	if p != nil {
		return p.Close()
	}
	return nil
}

func (a *hostPWMAudio) SetVolume(vol uint8) {
	a.mu.Lock()
	a.vol = vol
	p := a.player
	a.mu.Unlock()

	if p != nil {
		p.SetVolume(float64(vol) / 255.0)
	}
}

// WriteSample queues a sample; it is dropped when the player is stopped.
func (a *hostPWMAudio) WriteSample(sample int16) {
	a.mu.Lock()
	q := a.queue
	a.mu.Unlock()

	if q != nil {
		q.push(sample)
	}
}
