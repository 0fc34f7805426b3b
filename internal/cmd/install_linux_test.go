//go:build linux

package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemdUnit(t *testing.T) {
	unit := systemdUnit("/usr/local/bin/socd", nil)

	assert.Equal(t, `[Unit]
Description=`+Description+`
After=systemd-udevd.service

[Service]
Type=simple
ExecStart="/usr/local/bin/socd" run --wait
Restart=on-failure

[Install]
WantedBy=multi-user.target
`, unit)
}

func TestSystemdUnitQuotesArgs(t *testing.T) {
	unit := systemdUnit("/opt/my tools/socd", []string{"--device-match=Gaming KB"})

	var execStart string
	for _, line := range strings.Split(unit, "\n") {
		if strings.HasPrefix(line, "ExecStart=") {
			execStart = line
		}
	}
	assert.Equal(t, `ExecStart="/opt/my tools/socd" run --wait "--device-match=Gaming KB"`, execStart)
}
