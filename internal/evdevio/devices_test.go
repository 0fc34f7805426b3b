package evdevio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/socd/internal/evdevio"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		devName  string
		match    string
		expected bool
	}{
		{"exact", "keyboard", "keyboard", true},
		{"substring", "AT Translated Set 2 keyboard", "keyboard", true},
		{"case insensitive", "Logitech USB Keyboard", "keyboard", true},
		{"uppercase match", "usb keyboard", "KEYBOARD", true},
		{"no match", "Logitech USB Receiver Mouse", "keyboard", false},
		{"empty match", "anything", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evdevio.Matches(tt.devName, tt.match))
		})
	}
}

func TestSelectDevice(t *testing.T) {
	devs := []evdevio.DeviceInfo{
		{Path: "/dev/input/event0", Name: "Power Button"},
		{Path: "/dev/input/event1", Name: "virtual-keyboard"},
		{Path: "/dev/input/event2", Name: "AT Translated Set 2 keyboard"},
		{Path: "/dev/input/event3", Name: "Gaming Keyboard"},
	}

	d, err := evdevio.SelectDevice(devs, "keyboard", evdevio.DefaultSinkName)
	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event2", d.Path)

	d, err = evdevio.SelectDevice(devs, "keyboard", "")
	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event1", d.Path)

	d, err = evdevio.SelectDevice(devs, "gaming", evdevio.DefaultSinkName)
	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event3", d.Path)

	_, err = evdevio.SelectDevice(devs, "joystick", evdevio.DefaultSinkName)
	assert.ErrorIs(t, err, evdevio.ErrSourceNotFound)

	_, err = evdevio.SelectDevice(nil, "keyboard", evdevio.DefaultSinkName)
	assert.ErrorIs(t, err, evdevio.ErrSourceNotFound)
}
