//go:build tinygo && pyportal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/adt7410"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/touch/resistive"
	"tinygo.org/x/drivers/ws2812"
)

// pyPortalRotation is the screen rotation baked into the device build:
// 0 is landscape, 270 is portrait.
const pyPortalRotation = 0

type pyPortalHAL struct {
	board  Board
	logger *serialLogger
	disp   Display
	touch  Touch
	light  LightSensor
	temp   Thermometer
	pixel  NeoPixel
	audio  Audio
}

// New returns the Adafruit PyPortal HAL.
//
// Console: USB CDC. Peripherals that fail to initialize are replaced by stubs.
func New() HAL {
	logger := &serialLogger{out: machine.Serial}

	board, err := BoardFor(BoardPyPortal, pyPortalRotation)
	if err != nil {
		panic(err)
	}
	w, h := board.Width, board.Height

	machine.InitADC()

	hw := &pyPortalHAL{
		board:  board,
		logger: logger,
		disp:   newPyPortalDisplay(),
		touch:  newPyPortalTouch(w, h),
		light:  newPyPortalLight(),
		pixel:  newPyPortalNeoPixel(),
		audio:  newDACAudio(),
	}

	if temp, ok := newADT7410(); ok {
		hw.temp = temp
	} else {
		logger.WriteLineString("hal: ADT7410 not found, using CPU temperature")
	}
	return hw
}

func (h *pyPortalHAL) Board() Board            { return h.board }
func (h *pyPortalHAL) Logger() Logger          { return h.logger }
func (h *pyPortalHAL) Display() Display        { return h.disp }
func (h *pyPortalHAL) Touch() Touch            { return h.touch }
func (h *pyPortalHAL) Light() LightSensor      { return h.light }
func (h *pyPortalHAL) NeoPixel() NeoPixel      { return h.pixel }
func (h *pyPortalHAL) Audio() Audio            { return h.audio }
func (h *pyPortalHAL) CPUTemperature() float32 { return float32(machine.ReadTemperature()) / 1000 }

func (h *pyPortalHAL) Temperature() Thermometer {
	if h.temp == nil {
		return nil
	}
	return h.temp
}

type pyPortalDisplay struct {
	lcd       *ili9341.Device
	backlight machine.Pin
}

func newPyPortalDisplay() Display {
	lcd := ili9341.NewParallel(
		machine.LCD_DATA0,
		machine.TFT_WR,
		machine.TFT_DC,
		machine.TFT_CS,
		machine.TFT_RESET,
		machine.TFT_RD,
	)
	lcd.Configure(ili9341.Config{})
	if pyPortalRotation == 270 {
		lcd.SetRotation(ili9341.Rotation0)
	} else {
		lcd.SetRotation(ili9341.Rotation90)
	}

	bl := machine.TFT_BACKLIGHT
	bl.Configure(machine.PinConfig{Mode: machine.PinOutput})
	bl.High()
	return &pyPortalDisplay{lcd: lcd, backlight: bl}
}

func (d *pyPortalDisplay) Canvas() Canvas { return d.lcd }

// SetBacklight switches the backlight pin; the panel has no dimming on this
// wiring, so any level above zero is on.
func (d *pyPortalDisplay) SetBacklight(level float32) {
	if ClampBacklight(level) > 0 {
		d.backlight.High()
		return
	}
	d.backlight.Low()
}

type pyPortalTouch struct {
	panel    resistive.FourWire
	cal      Calibration
	w, h     int
	rotation int
}

func newPyPortalTouch(w, h int) Touch {
	t := &pyPortalTouch{cal: DefaultCalibration, w: w, h: h, rotation: pyPortalRotation}
	if err := t.panel.Configure(&resistive.FourWireConfig{
		YP: machine.TOUCH_YD,
		YM: machine.TOUCH_YU,
		XP: machine.TOUCH_XR,
		XM: machine.TOUCH_XL,
	}); err != nil {
		return stubTouch{}
	}
	return t
}

func (t *pyPortalTouch) TouchPoint() (TouchPoint, bool) {
	raw := t.panel.ReadTouchPoint()
	z := raw.Z >> 6
	if z <= MinTouchPressure {
		return TouchPoint{}, false
	}
	x, y := t.cal.Map(raw.X, raw.Y, t.w, t.h, t.rotation)
	return TouchPoint{X: x, Y: y, Z: z}, true
}

type pyPortalLight struct {
	adc machine.ADC
}

func newPyPortalLight() LightSensor {
	adc := machine.ADC{Pin: machine.LIGHT}
	adc.Configure(machine.ADCConfig{})
	return &pyPortalLight{adc: adc}
}

func (l *pyPortalLight) Value() uint16 { return l.adc.Get() }

type adtThermometer struct {
	dev *adt7410.Device
}

func newADT7410() (*adtThermometer, bool) {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{SCL: machine.SCL_PIN, SDA: machine.SDA_PIN}); err != nil {
		return nil, false
	}
	dev := adt7410.New(i2c)
	if !dev.Connected() {
		return nil, false
	}
	dev.Configure()
	return &adtThermometer{dev: dev}, true
}

func (t *adtThermometer) Celsius() (float32, bool) {
	milli, err := t.dev.ReadTemperature()
	if err != nil {
		return 0, false
	}
	return float32(milli) / 1000, true
}

type pyPortalNeoPixel struct {
	dev ws2812.Device
	buf [1]color.RGBA
}

func newPyPortalNeoPixel() NeoPixel {
	pin := machine.NEOPIXEL
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &pyPortalNeoPixel{dev: ws2812.New(pin)}
}

func (p *pyPortalNeoPixel) Fill(c color.RGBA) error {
	for i := range p.buf {
		p.buf[i] = c
	}
	return p.dev.WriteColors(p.buf[:])
}
