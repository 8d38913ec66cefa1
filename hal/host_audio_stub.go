//go:build !tinygo && !cgo

package hal

// hostAudio has no output without cgo; cue playback is skipped.
type hostAudio struct{}

func newHostAudio() hostAudio { return hostAudio{} }

func (a hostAudio) PWM() PWMAudio { return nil }
