// Package command provides CLI command definitions for envconf.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/envconf-go/internal/cli/output"
	"github.com/yndnr/envconf-go/internal/infra/buildinfo"
	"github.com/yndnr/envconf-go/internal/infra/confloader"
	"github.com/yndnr/envconf-go/internal/telemetry/logger"
	"github.com/yndnr/envconf-go/internal/telemetry/metric"
)

const (
	metaLogger  = "logger"
	metaMetrics = "metrics"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:     "envconf",
		Usage:    "Merge and validate a directory of environment-aware YAML configuration",
		Version:  buildinfo.String(),
		Flags:    globalFlags(),
		Metadata: map[string]any{},
		Commands: []*cli.Command{
			ShowCommand(),
			GetCommand(),
			CheckCommand(),
			VersionCommand(),
		},
		Before: before,
		After:  after,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Configuration directory",
			EnvVars: []string{"ENVCONF_DIR"},
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "env",
			Aliases: []string{"e"},
			Usage:   "Active environment (skips global file lookup together with --environments)",
			EnvVars: []string{"ENVCONF_ENV"},
		},
		&cli.StringSliceFlag{
			Name:    "environments",
			Usage:   "Recognised environments, comma separated",
			EnvVars: []string{"ENVCONF_ENVIRONMENTS"},
		},
		&cli.StringSliceFlag{
			Name:    "require",
			Aliases: []string{"r"},
			Usage:   "Key that must be present after merging (repeatable)",
			EnvVars: []string{"ENVCONF_REQUIRE"},
		},
		&cli.StringFlag{
			Name:  "extension",
			Usage: "Extension of configuration files",
			Value: confloader.DefaultExtension,
		},
		&cli.StringFlag{
			Name:  "env-prefix",
			Usage: "Let environment variables with this prefix override top-level keys",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: " + output.FormatNames(", "),
			Value:   "table",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
			Value: "warn",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
			Value: "text",
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "Write Prometheus metrics to this file when the command finishes",
		},
	}
}

func before(c *cli.Context) error {
	log, err := logger.New(logger.Config{
		Level:  c.String("log-level"),
		Format: c.String("log-format"),
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	c.App.Metadata[metaLogger] = log
	logger.SetDefault(log)

	if c.String("metrics-textfile") != "" {
		c.App.Metadata[metaMetrics] = metric.NewRegistry()
	}
	return nil
}

func after(c *cli.Context) error {
	path := c.String("metrics-textfile")
	reg := getMetrics(c)
	if path == "" || reg == nil {
		return nil
	}
	if err := reg.WriteTextfile(path); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

func getLogger(c *cli.Context) logger.Logger {
	if l, ok := c.App.Metadata[metaLogger].(logger.Logger); ok {
		return l
	}
	return logger.Nop()
}

func getMetrics(c *cli.Context) *metric.Registry {
	reg, _ := c.App.Metadata[metaMetrics].(*metric.Registry)
	return reg
}

// loadConfig builds a loader from the global flags and runs Load.
func loadConfig(c *cli.Context) (*confloader.Loader, error) {
	opts := []confloader.Option{
		confloader.WithLogger(getLogger(c)),
		confloader.WithExtension(c.String("extension")),
	}
	if reg := getMetrics(c); reg != nil {
		opts = append(opts, confloader.WithMetrics(reg))
	}
	if prefix := c.String("env-prefix"); prefix != "" {
		opts = append(opts, confloader.WithEnvOverrides(prefix))
	}

	l, err := confloader.New(c.String("dir"), opts...)
	if err != nil {
		return nil, err
	}

	if env := c.String("env"); env != "" {
		l.SetEnvironment(env)
	}
	if c.IsSet("environments") {
		l.SetPossibleEnvironments(c.StringSlice("environments"))
	}
	l.SetRequiredKeys(c.StringSlice("require"))

	if err := l.Load(); err != nil {
		return nil, err
	}
	return l, nil
}
