//go:build tinygo && !pyportal

package hal

// stubHAL lets the controller boot on TinyGo targets without PyPortal
// peripherals (for example `tinygo run` on linux or wasm). Everything except
// the log is inert.
type stubHAL struct {
	logger *serialLogger
	disp   stubDisplay
}

// New returns a TinyGo HAL with no attached peripherals.
func New() HAL {
	return &stubHAL{
		logger: &serialLogger{},
		disp:   stubDisplay{canvas: &stubCanvas{w: 320, h: 240}},
	}
}

func (h *stubHAL) Board() Board {
	return Board{Name: BoardPyPortal, Width: 320, Height: 240}
}

func (h *stubHAL) Logger() Logger           { return h.logger }
func (h *stubHAL) Display() Display         { return h.disp }
func (h *stubHAL) Touch() Touch             { return stubTouch{} }
func (h *stubHAL) Light() LightSensor       { return stubLight{} }
func (h *stubHAL) Temperature() Thermometer { return nil }
func (h *stubHAL) CPUTemperature() float32  { return 0 }
func (h *stubHAL) NeoPixel() NeoPixel       { return stubNeoPixel{} }
func (h *stubHAL) Audio() Audio             { return stubAudio{} }
