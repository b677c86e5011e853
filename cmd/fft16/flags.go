package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	gpufft "github.com/cwbudde/algo-gpufft"
	"github.com/cwbudde/algo-gpufft/device/host"
)

var (
	configFile  string
	logLevel    string
	logFormat   string
	deviceIndex int64
	memoryLimit int64

	// loaded by setup; subcommands read their own sections.
	fileConfig Config
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to a YAML config file",
			Value:       defaultConfigPath(),
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json)",
			Value:       "text",
			Destination: &logFormat,
		},
		&cli.Int64Flag{
			Name:        "device",
			Aliases:     []string{"d"},
			Usage:       "device index",
			Destination: &deviceIndex,
		},
		&cli.Int64Flag{
			Name:        "memory-limit",
			Usage:       "simulated device memory in bytes (0 = unlimited)",
			Destination: &memoryLimit,
		},
	}
}

// setup loads the config file, installs the logger and registers the
// simulated device backend.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := LoadConfig(configFile, cmd.IsSet("config"))
	if err != nil {
		return ctx, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	fileConfig = cfg
	applyGlobalConfig(cmd, cfg, &logLevel, &logFormat, &deviceIndex, &memoryLimit)

	logger, err := newLogger(os.Stderr, logLevel, logFormat)
	if err != nil {
		return ctx, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	gpufft.SetLogger(logger)

	if memoryLimit < 0 {
		return ctx, cli.Exit("error: --memory-limit must not be negative", 1)
	}
	host.RegisterBackend(
		host.WithMemoryLimit(int(memoryLimit)),
		host.WithLogger(logger),
	)
	return ctx, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func openRuntime() (*gpufft.Runtime, error) {
	rt, err := gpufft.OpenRuntime(int(deviceIndex))
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	return rt, nil
}
