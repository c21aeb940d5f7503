// Package config holds the root command line definition.
package config

import "github.com/Alia5/imsdl/internal/cmd"

// CLI is the root kong model. Values come from flags, environment and the
// JSON/YAML/TOML files found by configpaths.
type CLI struct {
	ConfigFile string `name:"config" help:"Config file (JSON, YAML or TOML, chosen by extension)" env:"IMSDL_CONFIG" type:"path"`
	Log        Log    `embed:"" prefix:"log."`

	Inspect cmd.Inspect       `cmd:"" help:"Open a window and trace how input is routed between the GUI and the application"`
	Config  cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

type Log struct {
	Level     string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"IMSDL_LOG_LEVEL"`
	File      string `help:"Also write logs to this file" env:"IMSDL_LOG_FILE"`
	EventFile string `help:"Write the raw event trace to this file" env:"IMSDL_LOG_EVENT_FILE"`
}
