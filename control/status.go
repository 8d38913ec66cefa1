package control

import (
	"fmt"
	"strings"

	"neoportal/hal"
)

// Fahrenheit converts degrees Celsius.
func Fahrenheit(celsius float32) float32 {
	return celsius*1.8 + 32
}

// FormatStatus renders the sensor view status label.
func FormatStatus(p hal.TouchPoint, touched bool, light uint16, fahrenheit float32) string {
	var sb strings.Builder
	if touched {
		fmt.Fprintf(&sb, "Touch: (%d, %d, %d)\n", p.X, p.Y, p.Z)
	} else {
		sb.WriteString("Touch: None\n")
	}
	fmt.Fprintf(&sb, "Light: %d\n", light)
	fmt.Fprintf(&sb, "Temp: %.0f°F", fahrenheit)
	return sb.String()
}

// temperature returns the reading in Fahrenheit, from the dedicated sensor
// when it answers and from the CPU otherwise.
func (c *Controller) temperature() float32 {
	if t := c.cfg.Temperature; t != nil {
		if celsius, ok := t.Celsius(); ok {
			return Fahrenheit(celsius)
		}
	}
	if c.cfg.CPUTemperature == nil {
		return Fahrenheit(0)
	}
	return Fahrenheit(c.cfg.CPUTemperature())
}

func (c *Controller) updateStatus(p hal.TouchPoint, touched bool) {
	var light uint16
	if c.cfg.Light != nil {
		light = c.cfg.Light.Value()
	}
	c.cfg.Surface.SetStatusText(FormatStatus(p, touched, light, c.temperature()))
}
