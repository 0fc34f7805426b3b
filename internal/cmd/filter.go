package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/socd/internal/evdevio"
	"github.com/Alia5/socd/internal/filter"
	"github.com/Alia5/socd/internal/log"
)

type Filter struct {
	Device      string `help:"Input device path, skips name matching" env:"SOCD_DEVICE"`
	DeviceMatch string `help:"Case-insensitive substring of the input device name" default:"keyboard" env:"SOCD_DEVICE_MATCH"`
	SinkName    string `help:"Name of the virtual output device" default:"virtual-keyboard" env:"SOCD_SINK_NAME"`
	Wait        bool   `help:"Wait for a matching device instead of exiting" env:"SOCD_WAIT"`
}

// Run is called by Kong when the run command is executed.
func (f *Filter) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return f.StartFilter(ctx, logger, rawLogger)
}

func (f *Filter) StartFilter(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	if !evdevio.CheckPrerequisites(logger) {
		logger.Warn("Prerequisites not met, opening devices will likely fail")
	}

	info, err := f.findDevice(ctx, logger)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	src, err := evdevio.OpenSource(info.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn("failed to release input device", "path", info.Path, "error", err)
		}
	}()

	sink, err := evdevio.OpenSink(f.SinkName, src)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("failed to close virtual device", "name", f.SinkName, "error", err)
		}
	}()

	logger.Info("Filtering input device", "path", info.Path, "name", src.Name(), "sink", f.SinkName)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	// Closing the source unblocks the pending read.
	go func() {
		<-runCtx.Done()
		_ = src.Close()
	}()

	err = filter.New(src, sink,
		filter.WithLogger(logger),
		filter.WithRawLogger(rawLogger),
	).Run(runCtx)
	if err != nil {
		return err
	}
	logger.Info("Shutting down")
	return nil
}

func (f *Filter) findDevice(ctx context.Context, logger *slog.Logger) (evdevio.DeviceInfo, error) {
	if f.Device != "" {
		return evdevio.DeviceInfo{Path: f.Device}, nil
	}
	if f.Wait {
		return evdevio.WaitForDevice(ctx, f.DeviceMatch, f.SinkName, logger)
	}
	info, err := evdevio.FindDevice(f.DeviceMatch, f.SinkName)
	if errors.Is(err, evdevio.ErrSourceNotFound) {
		logger.Error("Keyboard not found", "match", f.DeviceMatch)
		logger.Info("Use 'socd list' to see available devices")
	}
	return info, err
}
