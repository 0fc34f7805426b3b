//go:build !linux

package evdevio

import (
	"context"
	"log/slog"

	"github.com/Alia5/socd/internal/filter"
)

func ListDevices() ([]DeviceInfo, error) {
	return nil, ErrUnsupportedPlatform
}

func FindDevice(match, sinkName string) (DeviceInfo, error) {
	return DeviceInfo{}, ErrUnsupportedPlatform
}

func WaitForDevice(ctx context.Context, match, sinkName string, logger *slog.Logger) (DeviceInfo, error) {
	return DeviceInfo{}, ErrUnsupportedPlatform
}

func CheckPrerequisites(logger *slog.Logger) bool {
	return false
}

type Source struct{}

func OpenSource(path string) (*Source, error) {
	return nil, ErrUnsupportedPlatform
}

func (s *Source) Name() string { return "" }

func (s *Source) ReadOne() (*filter.Event, error) { return nil, ErrUnsupportedPlatform }

func (s *Source) Close() error { return nil }

type Sink struct{}

func OpenSink(name string, src *Source) (*Sink, error) {
	return nil, ErrUnsupportedPlatform
}

func (s *Sink) WriteOne(ev *filter.Event) error { return ErrUnsupportedPlatform }

func (s *Sink) Close() error { return nil }
