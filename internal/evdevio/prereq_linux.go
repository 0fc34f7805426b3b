//go:build linux

package evdevio

import (
	"log/slog"

	"golang.org/x/sys/unix"
)

// UinputPath is the uinput control node used to create the virtual device.
const UinputPath = "/dev/uinput"

// CheckPrerequisites reports missing permissions for reading input devices
// and creating the virtual device. It only logs; the open calls that follow
// produce the actual errors.
func CheckPrerequisites(logger *slog.Logger) bool {
	ok := true
	if err := unix.Access(InputDir, unix.R_OK|unix.X_OK); err != nil {
		logger.Warn("Cannot access input devices", "path", InputDir, "error", err)
		ok = false
	}
	if err := unix.Access(UinputPath, unix.R_OK|unix.W_OK); err != nil {
		logger.Warn("Cannot access uinput", "path", UinputPath, "error", err)
		logger.Info("Run as root or add your user to the group owning " + UinputPath)
		ok = false
	}
	return ok
}
