//go:build !tinygo

package hal

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardFor(t *testing.T) {
	tests := []struct {
		name     string
		rotation int
		w, h     int
		wantErr  bool
	}{
		{"", 0, 320, 240, false},
		{BoardPyPortal, 270, 240, 320, false},
		{BoardTitano, 0, 480, 320, false},
		{BoardTitano, 270, 320, 480, false},
		{"feather", 0, 0, 0, true},
		{BoardTitano, 90, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%d", tt.name, tt.rotation), func(t *testing.T) {
			b, err := BoardFor(tt.name, tt.rotation)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w, b.Width)
			assert.Equal(t, tt.h, b.Height)
			assert.Equal(t, tt.rotation, b.Rotation)
		})
	}
}

func TestNewWithConfig(t *testing.T) {
	var out bytes.Buffer
	h, err := NewWithConfig(HostConfig{Board: BoardTitano, Celsius: 30, LogJSON: true, LogOut: &out})
	require.NoError(t, err)

	b := h.Board()
	assert.Equal(t, 480, b.Width)
	assert.Equal(t, 320, b.Height)

	c, ok := h.Temperature().Celsius()
	require.True(t, ok)
	assert.Equal(t, float32(30), c)

	w, hh := h.Display().Canvas().Size()
	assert.Equal(t, int16(480), w)
	assert.Equal(t, int16(320), hh)

	h.Logger().WriteLineString("View 1 On")
	assert.Contains(t, out.String(), `"msg":"View 1 On"`)
}

func TestNewWithConfigNoADT(t *testing.T) {
	h, err := NewWithConfig(HostConfig{NoADT: true, LogOut: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Nil(t, h.Temperature())
}

func TestNewWithConfigErrors(t *testing.T) {
	_, err := NewWithConfig(HostConfig{Board: "clue"})
	assert.Error(t, err, "unknown board")
	_, err = NewWithConfig(HostConfig{LogLevel: "loud"})
	assert.Error(t, err, "bad log level")
}

func TestClampBacklight(t *testing.T) {
	for _, tt := range []struct{ in, want float32 }{{-1, 0}, {0.3, 0.3}, {7, 1}} {
		assert.Equal(t, tt.want, ClampBacklight(tt.in), "ClampBacklight(%v)", tt.in)
	}
}
