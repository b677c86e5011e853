package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config is the optional fft16 config file. Pointer fields distinguish
// "not set" from zero values.
type Config struct {
	Device      *int64 `yaml:"device"`
	MemoryLimit *int64 `yaml:"memory_limit"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`

	Verify VerifyConfig `yaml:"verify"`
	Bench  BenchConfig  `yaml:"bench"`
}

type VerifyConfig struct {
	Trials    *int64   `yaml:"trials"`
	Tolerance *float64 `yaml:"tolerance"`
	Seed      *int64   `yaml:"seed"`
}

type BenchConfig struct {
	Warmup *int64 `yaml:"warmup"`
	Iters  *int64 `yaml:"iters"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "algo-gpufft", "fft16.yaml")
}

// LoadConfig reads path. A missing file yields a zero Config unless the
// caller asked for that file explicitly.
func LoadConfig(path string, explicit bool) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyGlobalConfig applies config file defaults to the global flags
// that were not set on the command line.
func applyGlobalConfig(c *cli.Command, cfg Config,
	level, format *string, dev, memLimit *int64,
) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		*level = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		*format = cfg.LogFormat
	}
	if cfg.Device != nil && !c.IsSet("device") {
		*dev = *cfg.Device
	}
	if cfg.MemoryLimit != nil && !c.IsSet("memory-limit") {
		*memLimit = *cfg.MemoryLimit
	}
}

func applyVerifyConfig(c *cli.Command, cfg VerifyConfig, trials *int64, tol *float64, seed *int64) {
	if cfg.Trials != nil && !c.IsSet("trials") {
		*trials = *cfg.Trials
	}
	if cfg.Tolerance != nil && !c.IsSet("tolerance") {
		*tol = *cfg.Tolerance
	}
	if cfg.Seed != nil && !c.IsSet("seed") {
		*seed = *cfg.Seed
	}
}

func applyBenchConfig(c *cli.Command, cfg BenchConfig, warmup, iters *int64) {
	if cfg.Warmup != nil && !c.IsSet("warmup") {
		*warmup = *cfg.Warmup
	}
	if cfg.Iters != nil && !c.IsSet("iters") {
		*iters = *cfg.Iters
	}
}
