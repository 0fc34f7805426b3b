// Package config defines the command line interface. Every flag can also be
// set from a JSON, YAML or TOML configuration file or from SOCD_* variables.
package config

import "github.com/Alia5/socd/internal/cmd"

type LogConfig struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"SOCD_LOG_LEVEL"`
	File    string `help:"Write logs to this file in addition to stderr" env:"SOCD_LOG_FILE"`
	RawFile string `help:"Trace every input event to this file" env:"SOCD_LOG_RAW_FILE"`
}

type CLI struct {
	Config string    `help:"Configuration file (json, yaml or toml)" env:"SOCD_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Run       cmd.Filter        `cmd:"" default:"withargs" help:"Filter opposing key presses of a keyboard (default)"`
	List      cmd.List          `cmd:"" help:"List input devices"`
	Configure cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
	Install   cmd.Install       `cmd:"" help:"Install socd as a systemd service"`
	Uninstall cmd.Uninstall     `cmd:"" help:"Remove the systemd service"`
}
