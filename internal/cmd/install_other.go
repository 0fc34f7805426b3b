//go:build !linux

package cmd

import (
	"errors"
	"log/slog"
)

var errInstallUnsupported = errors.New("service installation is only supported on linux")

func install(logger *slog.Logger, runArgs []string) error {
	return errInstallUnsupported
}

func uninstall(logger *slog.Logger) error {
	return errInstallUnsupported
}
