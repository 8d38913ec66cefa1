//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// HostConfig selects what the emulated board looks like.
type HostConfig struct {
	Board    string
	Rotation int
	// NoADT emulates a board without the ADT7410, forcing the CPU fallback.
	NoADT    bool
	// Celsius is the emulated ADT7410 reading.
	Celsius  float32
	LogLevel string
	LogJSON  bool
	LogOut   io.Writer
}

type hostHAL struct {
	board  Board
	logger *hostLogger
	fb     *hostFramebuffer
	touch  *hostTouch
	light  *hostLight
	temp   *hostThermometer
	pixel  *hostNeoPixel
	aud    Audio
}

// New returns a host HAL emulating a landscape PyPortal.
func New() HAL {
	h, err := NewWithConfig(HostConfig{})
	if err != nil {
		panic(err)
	}
	return h
}

// NewWithConfig returns a host HAL for the given board and rotation.
func NewWithConfig(cfg HostConfig) (HAL, error) {
	board, err := BoardFor(cfg.Board, cfg.Rotation)
	if err != nil {
		return nil, err
	}
	logger, err := newHostLogger(cfg)
	if err != nil {
		return nil, err
	}

	h := &hostHAL{
		board:  board,
		logger: logger,
		fb:     newHostFramebuffer(board.Width, board.Height),
		touch:  &hostTouch{},
		light:  newHostLight(20*time.Second, 800, 52000),
		pixel:  &hostNeoPixel{logger: logger},
		aud:    newHostAudio(),
	}
	if !cfg.NoADT {
		h.temp = &hostThermometer{celsius: cfg.Celsius}
	}
	return h, nil
}

func (h *hostHAL) Board() Board            { return h.board }
func (h *hostHAL) Logger() Logger          { return h.logger }
func (h *hostHAL) Display() Display        { return h.fb }
func (h *hostHAL) Touch() Touch            { return h.touch }
func (h *hostHAL) Light() LightSensor      { return h.light }
func (h *hostHAL) CPUTemperature() float32 { return 41.0 }
func (h *hostHAL) NeoPixel() NeoPixel      { return h.pixel }
func (h *hostHAL) Audio() Audio            { return h.aud }

func (h *hostHAL) Temperature() Thermometer {
	if h.temp == nil {
		return nil
	}
	return h.temp
}

type hostLogger struct {
	log *logrus.Logger
}

func newHostLogger(cfg HostConfig) (*hostLogger, error) {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	if cfg.LogOut != nil {
		l.SetOutput(cfg.LogOut)
	}
	if cfg.LogJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if lvl := strings.TrimSpace(cfg.LogLevel); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("hal: log level: %w", err)
		}
		l.SetLevel(level)
	}
	return &hostLogger{log: l}, nil
}

func (l *hostLogger) WriteLineString(s string) {
	l.log.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.log.Info(string(b))
}
