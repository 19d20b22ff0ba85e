// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds the configuration of the acec command.
package config

import (
	"runtime"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

var (
	ErrFormat   = errors.New("unknown output format")
	ErrJobs     = errors.New("jobs must be positive")
	ErrSimWords = errors.New("sim-words must be positive")
)

// Config is the configuration of box reconstruction and comparison.
type Config struct {
	Verbose  bool          `mapstructure:"verbose"`
	LogLevel zapcore.Level `mapstructure:"log-level"`
	// Jobs bounds the number of files processed concurrently.
	Jobs int `mapstructure:"jobs"`
	// MaxCuts bounds the cuts kept per node; 0 selects the engine default.
	MaxCuts int    `mapstructure:"max-cuts"`
	Format  string `mapstructure:"format"`
	// SimWords is the number of 64 bit simulation words used to compare
	// boxes.
	SimWords int   `mapstructure:"sim-words"`
	Seed     int64 `mapstructure:"seed"`
	// Miter requests a SAT check of the outputs in addition to the box
	// comparison.
	Miter bool `mapstructure:"miter"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel: zapcore.InfoLevel,
		Jobs:     runtime.GOMAXPROCS(0),
		Format:   FormatText,
		SimWords: 4,
		Seed:     1,
	}
}

// Validate checks c.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return errors.Wrapf(ErrFormat, "%q", c.Format)
	}
	if c.Jobs <= 0 {
		return errors.Wrapf(ErrJobs, "got %d", c.Jobs)
	}
	if c.SimWords <= 0 {
		return errors.Wrapf(ErrSimWords, "got %d", c.SimWords)
	}
	return nil
}

// Load reads the config file at path, if any, into v and decodes v over the
// defaults.
func Load(path string, v *viper.Viper) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	cfg := Default()
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)
	if err := v.Unmarshal(&cfg, viper.DecodeHook(hook), withErrorUnused()); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func withErrorUnused() viper.DecoderConfigOption {
	return func(c *mapstructure.DecoderConfig) {
		c.ErrorUnused = true
	}
}
