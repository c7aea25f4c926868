//go:build windows

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/Microsoft/go-junction/internal/config"
	"github.com/Microsoft/go-junction/internal/log"
	"github.com/Microsoft/go-junction/internal/logfields"
)

const (
	configFlag    = "config"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
	traceFlag     = "trace"
)

var appCommands = []*cli.Command{
	createCommand,
	deleteCommand,
	existsCommand,
	targetCommand,
}

func app() *cli.App {
	return &cli.App{
		Name:           "junction",
		Usage:          "Create, inspect and remove NTFS junction points",
		Commands:       appCommands,
		ExitErrHandler: errHandler,
		Before:         beforeApp,
		After:          afterApp,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:  configFlag,
				Usage: "load settings from a TOML `file`",
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "logrus `level`, overrides the config file",
			},
			&cli.StringFlag{
				Name:  logFormatFlag,
				Usage: fmt.Sprintf("%q or %q, overrides the config file", config.FormatText, config.FormatJSON),
			},
			&cli.BoolFlag{
				Name:  traceFlag,
				Usage: "log a span for every junction operation",
			},
		},
	}
}

func beforeApp(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return fmt.Errorf("logging setup: %w", err)
	}
	// commands inherit c.Context, so their spans and logs share this entry
	var entry *logrus.Entry
	c.Context, entry = log.WithContext(c.Context, log.L.WithField(logfields.Name, c.App.Name))
	entry.WithField("config", log.Format(c.Context, cfg)).Debug("loaded config")
	return nil
}

func afterApp(c *cli.Context) error {
	return shutdownTracing(c.Context)
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if p := c.Path(configFlag); p != "" {
		var err error
		if cfg, err = config.Load(p); err != nil {
			return nil, err
		}
	}
	if c.IsSet(logLevelFlag) {
		cfg.LogLevel = c.String(logLevelFlag)
	}
	if c.IsSet(logFormatFlag) {
		cfg.LogFormat = c.String(logFormatFlag)
	}
	if c.IsSet(traceFlag) {
		cfg.Trace = c.Bool(traceFlag)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func errHandler(c *cli.Context, err error) {
	if err == nil {
		return
	}
	n := c.App.Name
	if c.Command != nil && c.Command.Name != "" && c.Command.Name != n {
		n += " " + c.Command.Name
	}
	cli.HandleExitCoder(cli.Exit(fmt.Errorf("%s: %w", n, err), 1))
}
