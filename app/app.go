// Package app wires the HAL to the layout, renderer, input and controller,
// and runs the controller loop.
package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"neoportal/control"
	"neoportal/cue"
	"neoportal/hal"
	"neoportal/input"
	"neoportal/ui/layout"
	"neoportal/ui/render"
)

// Config tunes the controller loop.
type Config struct {
	// Layout overrides the built-in table for the board.
	Layout *layout.Table
	// PollInterval is slept between touch samples while waiting for a
	// release. Zero spins.
	PollInterval time.Duration
	// TickInterval paces the loop. Zero runs it flat out.
	TickInterval time.Duration
}

type system struct {
	h      hal.HAL
	ctl    *control.Controller
	screen *render.Screen
	cfg    Config
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	board := h.Board()

	var tbl layout.Table
	if cfg.Layout != nil {
		tbl = *cfg.Layout
	} else {
		t, err := layout.Default(board.Name, board.Rotation)
		if err != nil {
			return nil, err
		}
		tbl = t
	}
	if tbl.Width != board.Width || tbl.Height != board.Height {
		return nil, fmt.Errorf("app: layout is %dx%d, screen is %dx%d", tbl.Width, tbl.Height, board.Width, board.Height)
	}
	reg, err := layout.Build(tbl)
	if err != nil {
		return nil, err
	}

	disp := h.Display()
	if disp == nil {
		return nil, errors.New("app: no display")
	}
	disp.SetBacklight(hal.ClampBacklight(tbl.Backlight))
	screen := render.New(disp.Canvas(), reg, tbl)

	ctl, err := control.New(control.Config{
		Registry:       reg,
		Surface:        screen,
		Input:          input.New(h.Touch(), cfg.PollInterval),
		Light:          h.Light(),
		Temperature:    h.Temperature(),
		CPUTemperature: h.CPUTemperature,
		NeoPixel:       h.NeoPixel(),
		Cues:           cue.NewPlayer(h.Audio(), h.Logger()),
		Logger:         h.Logger(),
	})
	if err != nil {
		return nil, err
	}
	return &system{h: h, ctl: ctl, screen: screen, cfg: cfg}, nil
}

// run starts the controller and ticks it until a tick fails or a panic is
// caught. A caught panic is drawn on the fatal screen and returned as an
// error.
func (s *system) run(stop <-chan struct{}) (err error) {
	defer func() {
		if v := recover(); v != nil {
			showFatal(s.h, v)
			err = fmt.Errorf("app: panic: %v", v)
		}
	}()

	if err := s.ctl.Start(); err != nil {
		return err
	}
	for {
		select {
		case <-stop:
			return nil
		default:
		}
		if err := s.ctl.Tick(); err != nil {
			return err
		}
		if s.cfg.TickInterval > 0 {
			time.Sleep(s.cfg.TickInterval)
		}
	}
}

// Host runs the controller loop on its own goroutine so the caller's main
// loop (the window or the headless ticker) never blocks on a held touch.
type Host struct {
	sys  *system
	stop chan struct{}
	once sync.Once

	mu   sync.Mutex
	err  error
	done bool
}

// New builds the controller with the default config and starts its loop.
// The returned step reports a loop failure; it never blocks.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{PollInterval: 5 * time.Millisecond, TickInterval: 10 * time.Millisecond})
}

// NewWithConfig is New with an explicit config. Setup errors are reported by
// the first step call.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	host, err := Start(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return host.Step
}

// Start builds the controller and starts its loop goroutine.
func Start(h hal.HAL, cfg Config) (*Host, error) {
	sys, err := newSystem(h, cfg)
	if err != nil {
		return nil, err
	}
	host := &Host{sys: sys, stop: make(chan struct{})}
	go host.loop()
	return host, nil
}

func (hs *Host) loop() {
	err := hs.sys.run(hs.stop)
	hs.mu.Lock()
	hs.err = err
	hs.done = true
	hs.mu.Unlock()
	if err != nil {
		hs.sys.h.Logger().WriteLineString(err.Error())
	}
}

// Step returns the loop's error once it has stopped.
func (hs *Host) Step() error {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.err
}

// Stop asks the loop to return after the current tick.
func (hs *Host) Stop() {
	hs.once.Do(func() { close(hs.stop) })
}

// State returns the controller state. It is only safe to call once the loop
// is done.
func (hs *Host) State() control.State { return hs.sys.ctl.State() }

// Run starts the controller and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	sys, err := newSystem(h, cfg)
	if err != nil {
		h.Logger().WriteLineString(err.Error())
		showFatal(h, err)
		select {}
	}
	if err := sys.run(nil); err != nil {
		h.Logger().WriteLineString(err.Error())
	}
	select {}
}
