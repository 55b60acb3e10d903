// Package cli wires the dcmtool command tree together.
package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/codeninja55/go-dcmx/cmd/dcmtool/internal/build"
	"github.com/codeninja55/go-dcmx/cmd/dcmtool/internal/config"
	"github.com/codeninja55/go-dcmx/cmd/dcmtool/internal/dicom/commands"
)

const (
	appName        = "dcmtool"
	appDescription = "DICOM utility CLI for go-dcmx"
)

// CLI is the root command structure.
type CLI struct {
	config.GlobalConfig

	Dump     commands.DumpCmd     `cmd:"" name:"dump" help:"Inspect DICOM file contents"`
	Validate commands.ValidateCmd `cmd:"" name:"validate" help:"Validate DICOM files against a profile"`
	Echo     commands.EchoCmd     `cmd:"" name:"echo" help:"Verify DICOM connectivity (association handshake)"`
	Lookup   commands.LookupCmd   `cmd:"" name:"lookup" help:"Look up DICOM tag information"`
}

// Run executes the dcmtool CLI with the provided build info.
func Run(version, commit, date string) error {
	build.SetBuildInfo(version, commit, date)

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"version": version,
			"commit":  commit,
			"date":    date,
		},
	)

	logger := setupLogger(&cli.GlobalConfig)
	logger.Debug("dcmtool starting", "version", version, "commit", commit, "build_date", date)

	if err := ctx.Run(&cli.GlobalConfig); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}
	return nil
}

// setupLogger configures the global logger from the CLI flags.
func setupLogger(cfg *config.GlobalConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	switch cfg.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	case "fatal":
		logger.SetLevel(log.FatalLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if !cfg.Pretty {
		logger.SetFormatter(log.JSONFormatter)
	}

	log.SetDefault(logger)
	return logger
}
