package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Description is the one-line summary shown in help output and service units.
const Description = "Last-intent-wins filter for opposing movement keys"

// Install registers socd as a system service.
type Install struct {
	DeviceMatch string `help:"Device name match passed to the service" default:"keyboard"`
	SinkName    string `help:"Virtual device name passed to the service" default:"virtual-keyboard"`
}

func (i *Install) Run(logger *slog.Logger) error {
	return install(logger, i.runArgs())
}

// runArgs returns the "run" flags that differ from their defaults.
func (i *Install) runArgs() []string {
	var args []string
	if i.DeviceMatch != "" && i.DeviceMatch != "keyboard" {
		args = append(args, "--device-match="+i.DeviceMatch)
	}
	if i.SinkName != "" && i.SinkName != "virtual-keyboard" {
		args = append(args, "--sink-name="+i.SinkName)
	}
	return args
}

// Uninstall removes the system service.
type Uninstall struct{}

func (u *Uninstall) Run(logger *slog.Logger) error {
	return uninstall(logger)
}

func currentExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}
