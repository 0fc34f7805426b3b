//go:build linux

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

const (
	serviceName = "socd.service"
	servicePath = "/etc/systemd/system/socd.service"
)

func install(logger *slog.Logger, runArgs []string) error {
	exePath, err := currentExecutable()
	if err != nil {
		return err
	}

	unit := systemdUnit(exePath, runArgs)
	if err := os.WriteFile(servicePath, []byte(unit), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", servicePath, err)
	}

	for _, args := range [][]string{
		{"daemon-reload"},
		{"enable", serviceName},
		{"restart", serviceName},
	} {
		if err := runSystemctl(args...); err != nil {
			return err
		}
	}

	logger.Info("Installed systemd service", "path", servicePath, "exec", exePath, "args", strings.Join(runArgs, " "))
	return nil
}

func uninstall(logger *slog.Logger) error {
	// Keep going on failure so a half-installed service is still cleaned up.
	errs := []error{
		runSystemctl("disable", "--now", serviceName),
	}
	if err := os.Remove(servicePath); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}
	errs = append(errs, runSystemctl("daemon-reload"))

	if err := errors.Join(errs...); err != nil {
		return err
	}
	logger.Info("Removed systemd service", "path", servicePath)
	return nil
}

// systemdUnit renders a unit that runs "socd run" with the given arguments.
// The device may be plugged in after boot, so the service always waits for it.
func systemdUnit(exePath string, runArgs []string) string {
	argv := []string{strconv.Quote(exePath), "run", "--wait"}
	for _, a := range runArgs {
		argv = append(argv, strconv.Quote(a))
	}

	var b strings.Builder
	section := func(name string, kv ...string) {
		fmt.Fprintf(&b, "[%s]\n", name)
		for i := 0; i+1 < len(kv); i += 2 {
			fmt.Fprintf(&b, "%s=%s\n", kv[i], kv[i+1])
		}
	}
	section("Unit",
		"Description", Description,
		"After", "systemd-udevd.service",
	)
	b.WriteByte('\n')
	section("Service",
		"Type", "simple",
		"ExecStart", strings.Join(argv, " "),
		"Restart", "on-failure",
	)
	b.WriteByte('\n')
	section("Install",
		"WantedBy", "multi-user.target",
	)
	return b.String()
}

func runSystemctl(args ...string) error {
	cmd := exec.Command("systemctl", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}
