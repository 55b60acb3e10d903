// Package config defines the global CLI configuration shared by every
// subcommand.
package config

// GlobalConfig holds flags available on every dcmtool command.
type GlobalConfig struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error,fatal" help:"Log level (debug, info, warn, error, fatal)"`
	Pretty   bool   `name:"pretty" default:"true" negatable:"" help:"Pretty log output (disable for JSON)"`
	Debug    bool   `name:"debug" help:"Report caller locations in logs"`
	NoBanner bool   `name:"no-banner" help:"Suppress the startup banner"`
}
