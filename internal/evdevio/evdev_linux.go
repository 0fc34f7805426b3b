//go:build linux

package evdevio

import (
	"errors"
	"fmt"
	"sync"

	evdev "github.com/holoplot/go-evdev"

	"github.com/Alia5/socd/internal/filter"
)

// ListDevices returns every readable input device node.
func ListDevices() ([]DeviceInfo, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}
	devs := make([]DeviceInfo, 0, len(paths))
	for _, p := range paths {
		devs = append(devs, DeviceInfo{Path: p.Path, Name: p.Name})
	}
	return devs, nil
}

// FindDevice returns the first input device whose name contains match.
func FindDevice(match, sinkName string) (DeviceInfo, error) {
	devs, err := ListDevices()
	if err != nil {
		return DeviceInfo{}, err
	}
	return SelectDevice(devs, match, sinkName)
}

// Source is an exclusively grabbed evdev device.
type Source struct {
	dev  *evdev.InputDevice
	name string

	closeOnce sync.Once
	closeErr  error
}

// OpenSource opens the device at path and grabs it, so no other consumer
// receives its events while the filter runs.
func OpenSource(path string) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrAcquisition, path, err)
	}
	if err := dev.Grab(); err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("%w: grab %s: %v", ErrAcquisition, path, err)
	}
	name, _ := dev.Name()
	return &Source{dev: dev, name: name}, nil
}

// Name returns the device name reported by the kernel.
func (s *Source) Name() string {
	return s.name
}

// ReadOne blocks until the next event arrives. It returns os.ErrClosed once
// Close has been called.
func (s *Source) ReadOne() (*filter.Event, error) {
	ev, err := s.dev.ReadOne()
	if err != nil {
		return nil, err
	}
	return &filter.Event{Type: uint16(ev.Type), Code: uint16(ev.Code), Value: ev.Value}, nil
}

// Close releases the grab and closes the device, unblocking a pending
// ReadOne. Safe to call more than once.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = errors.Join(s.dev.Ungrab(), s.dev.Close())
	})
	return s.closeErr
}

// Sink is a uinput device cloned from the source.
type Sink struct {
	dev *evdev.InputDevice

	closeOnce sync.Once
	closeErr  error
}

// OpenSink creates a virtual device named name with the capabilities of src.
func OpenSink(name string, src *Source) (*Sink, error) {
	dev, err := evdev.CloneDevice(name, src.dev)
	if err != nil {
		return nil, fmt.Errorf("create virtual device %q: %w", name, err)
	}
	return &Sink{dev: dev}, nil
}

// WriteOne injects a single event.
func (s *Sink) WriteOne(ev *filter.Event) error {
	return s.dev.WriteOne(&evdev.InputEvent{
		Type:  evdev.EvType(ev.Type),
		Code:  evdev.EvCode(ev.Code),
		Value: ev.Value,
	})
}

// Close destroys the virtual device.
func (s *Sink) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.dev.Close()
	})
	return s.closeErr
}
