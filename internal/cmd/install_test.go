package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstallRunArgs(t *testing.T) {
	tests := []struct {
		name     string
		install  Install
		expected []string
	}{
		{
			name:    "defaults",
			install: Install{DeviceMatch: "keyboard", SinkName: "virtual-keyboard"},
		},
		{
			name:     "custom match",
			install:  Install{DeviceMatch: "Gaming KB", SinkName: "virtual-keyboard"},
			expected: []string{"--device-match=Gaming KB"},
		},
		{
			name:     "custom match and sink",
			install:  Install{DeviceMatch: "razer", SinkName: "socd-out"},
			expected: []string{"--device-match=razer", "--sink-name=socd-out"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.install.runArgs())
		})
	}
}
