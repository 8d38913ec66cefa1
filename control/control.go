// Package control is the event dispatcher: it samples the sensors once per
// tick, hit-tests touches and runs the view/switch state machine.
package control

import (
	"errors"
	"fmt"
	"image/color"

	"neoportal/cue"
	"neoportal/hal"
	"neoportal/input"
	"neoportal/ui/view"
	"neoportal/ui/widget"
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

// State is the controller's whole mutable state.
type State struct {
	View     view.ID
	SwitchOn bool
}

// CuePlayer plays audio feedback.
type CuePlayer interface {
	Play(id cue.ID)
}

// Config wires the controller to its collaborators.
type Config struct {
	Registry *widget.Registry
	Surface  widget.Surface
	Input    *input.Debouncer

	Light hal.LightSensor
	// Temperature may be nil; CPUTemperature is read instead.
	Temperature    hal.Thermometer
	CPUTemperature func() float32

	NeoPixel hal.NeoPixel
	Cues     CuePlayer
	Logger   hal.Logger
}

// Controller owns State and drives the views from touch input.
type Controller struct {
	cfg    Config
	views  *view.Manager
	toggle *widget.Button
	state  State
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}

type nopCues struct{}

func (nopCues) Play(cue.ID) {}

// New validates cfg. The controller does nothing until Start.
func New(cfg Config) (*Controller, error) {
	if cfg.Registry == nil {
		return nil, errors.New("control: nil registry")
	}
	if cfg.Surface == nil {
		return nil, errors.New("control: nil surface")
	}
	if cfg.Input == nil {
		return nil, errors.New("control: nil input")
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	if cfg.Cues == nil {
		cfg.Cues = nopCues{}
	}

	neo, _ := cfg.Registry.First(widget.RoleTabNeopixel)
	sensors, _ := cfg.Registry.First(widget.RoleTabSensors)
	views, err := view.NewManager(cfg.Surface, neo, sensors)
	if err != nil {
		return nil, fmt.Errorf("control: %w", err)
	}
	toggle, _ := cfg.Registry.First(widget.RoleToggle)
	if toggle == nil {
		return nil, errors.New("control: layout has no toggle switch")
	}
	return &Controller{cfg: cfg, views: views, toggle: toggle}, nil
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Views exposes the view manager for inspection.
func (c *Controller) Views() *view.Manager { return c.views }

// Start shows the sensor view with the switch off and paints the first
// frame.
func (c *Controller) Start() error {
	c.views.Activate(view.Sensors)
	c.state = State{View: view.Sensors}
	c.setToggle(false)
	c.updateStatus(hal.TouchPoint{}, false)
	return c.cfg.Surface.Flush()
}

// Tick runs one loop iteration: sample touch once, refresh the status label,
// dispatch a press if the sample hit a button. A recognized press blocks
// until the finger lifts.
func (c *Controller) Tick() error {
	p, touched := c.cfg.Input.Poll()
	c.updateStatus(p, touched)

	if touched {
		b, idx := c.cfg.Registry.HitTest(widget.Point{X: p.X, Y: p.Y}, c.views.Visible)
		if b != nil {
			c.logf("button%d pressed", idx)
			if err := c.dispatch(b); err != nil {
				return err
			}
		}
	}
	return c.cfg.Surface.Flush()
}

// Run calls Tick until it fails.
func (c *Controller) Run() error {
	for {
		if err := c.Tick(); err != nil {
			return err
		}
	}
}

func (c *Controller) dispatch(b *widget.Button) error {
	switch b.Role {
	case widget.RoleTabNeopixel:
		return c.switchView(view.Neopixel)
	case widget.RoleTabSensors:
		return c.switchView(view.Sensors)
	case widget.RoleToggle:
		if c.state.View != view.Neopixel {
			return nil
		}
		c.cfg.Cues.Play(cue.Beep)
		if c.state.SwitchOn {
			c.setToggle(false)
			c.fill(black)
			c.logf("Switch OFF")
		} else {
			c.setToggle(true)
			c.fill(white)
			c.logf("Switch ON")
		}
		if err := c.waitForRelease(); err != nil {
			return err
		}
		c.logf("Neo Pixel Switch Pressed")
	case widget.RoleColor:
		if c.state.View != view.Neopixel {
			return nil
		}
		b.Selected = true
		c.cfg.Surface.SetButtonVisual(b)
		c.logf("Color Button Pressed")
		c.cfg.Cues.Play(cue.Beep)
		c.fill(b.Color)
		c.setToggle(true)
		if err := c.waitForRelease(); err != nil {
			return err
		}
		c.logf("Color Button Released")
		b.Selected = false
		c.cfg.Surface.SetButtonVisual(b)
	}
	return nil
}

func (c *Controller) switchView(id view.ID) error {
	if c.state.View == id {
		return nil
	}
	c.cfg.Cues.Play(cue.TabSwitch)
	c.views.Activate(id)
	c.state.View = id
	c.logf("View %d On", id.Number())
	return c.waitForRelease()
}

// setToggle updates the switch state and its button. The button reads "ON"
// and is unselected while the switch is on.
func (c *Controller) setToggle(on bool) {
	c.state.SwitchOn = on
	if on {
		c.toggle.Label = "ON"
	} else {
		c.toggle.Label = "OFF"
	}
	c.toggle.Selected = !on
	c.cfg.Surface.SetButtonVisual(c.toggle)
}

func (c *Controller) fill(col color.RGBA) {
	if c.cfg.NeoPixel == nil {
		return
	}
	if err := c.cfg.NeoPixel.Fill(col); err != nil {
		c.logf("neopixel: %v", err)
	}
}

// waitForRelease puts the held state on screen, then blocks until release.
func (c *Controller) waitForRelease() error {
	if err := c.cfg.Surface.Flush(); err != nil {
		return err
	}
	c.cfg.Input.WaitForRelease()
	return nil
}

func (c *Controller) logf(format string, args ...any) {
	c.cfg.Logger.WriteLineString(fmt.Sprintf(format, args...))
}
