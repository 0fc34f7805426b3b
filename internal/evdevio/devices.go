// Package evdevio connects the filter to Linux input devices: an evdev
// keyboard as the source and a uinput clone of it as the sink.
package evdevio

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceNotFound is returned when no input device matches.
	ErrSourceNotFound = errors.New("no matching input device found")
	// ErrAcquisition is returned when a device cannot be grabbed exclusively.
	ErrAcquisition = errors.New("failed to acquire input device")
	// ErrUnsupportedPlatform is returned on systems without evdev.
	ErrUnsupportedPlatform = errors.New("evdev is only supported on linux")
)

// DefaultMatch selects the first device with "keyboard" in its name.
const DefaultMatch = "keyboard"

// DefaultSinkName is the name of the virtual output device.
const DefaultSinkName = "virtual-keyboard"

// DeviceInfo describes an input device node.
type DeviceInfo struct {
	Path string
	Name string
}

// Matches reports whether name contains match, ignoring case.
func Matches(name, match string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(match))
}

// SelectDevice returns the first device in devs whose name matches.
// Devices named sinkName are skipped so a restarted filter never grabs its
// own virtual output.
func SelectDevice(devs []DeviceInfo, match, sinkName string) (DeviceInfo, error) {
	for _, d := range devs {
		if sinkName != "" && d.Name == sinkName {
			continue
		}
		if Matches(d.Name, match) {
			return d, nil
		}
	}
	return DeviceInfo{}, fmt.Errorf("%w: name contains %q", ErrSourceNotFound, match)
}
