//go:build linux

package evdevio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// InputDir is where the kernel creates evdev nodes.
const InputDir = "/dev/input"

// WaitForDevice behaves like FindDevice but, when nothing matches, watches
// InputDir until a matching device shows up or ctx is done.
func WaitForDevice(ctx context.Context, match, sinkName string, logger *slog.Logger) (DeviceInfo, error) {
	logger = logger.With("match", match)
	return waitForDevice(ctx, InputDir, func() (DeviceInfo, error) {
		return FindDevice(match, sinkName)
	}, logger)
}

func waitForDevice(ctx context.Context, dir string, find func() (DeviceInfo, error), logger *slog.Logger) (DeviceInfo, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return DeviceInfo{}, fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.Close()

	// Watch before the first scan so a device added in between is not missed.
	if err := w.Add(dir); err != nil {
		return DeviceInfo{}, fmt.Errorf("watch %s: %w", dir, err)
	}

	d, err := find()
	if !errors.Is(err, ErrSourceNotFound) {
		return d, err
	}
	logger.Info("Waiting for input device", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return DeviceInfo{}, fmt.Errorf("%w: %w", ErrSourceNotFound, ctx.Err())
		case err, ok := <-w.Errors:
			if !ok {
				return DeviceInfo{}, ErrSourceNotFound
			}
			return DeviceInfo{}, fmt.Errorf("watch %s: %w", dir, err)
		case ev, ok := <-w.Events:
			if !ok {
				return DeviceInfo{}, ErrSourceNotFound
			}
			// udev fixes permissions after creating the node.
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Chmod) {
				continue
			}
			logger.Debug("Input device change", "path", ev.Name, "op", ev.Op.String())
			d, err := find()
			if errors.Is(err, ErrSourceNotFound) {
				continue
			}
			return d, err
		}
	}
}
