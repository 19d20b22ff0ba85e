// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("", viper.New())
	require.NoError(t, err)
	def := Default()
	require.Equal(t, &def, cfg)
	require.NoError(t, def.Validate())
}

func TestLoadFile(t *testing.T) {
	path := write(t, `
verbose: true
log-level: debug
jobs: 3
max-cuts: 8
format: yaml
sim-words: 2
seed: 42
miter: true
`)
	cfg, err := Load(path, viper.New())
	require.NoError(t, err)
	require.Equal(t, &Config{
		Verbose:  true,
		LogLevel: zapcore.DebugLevel,
		Jobs:     3,
		MaxCuts:  8,
		Format:   FormatYAML,
		SimWords: 2,
		Seed:     42,
		Miter:    true,
	}, cfg)
}

func TestLoadOverride(t *testing.T) {
	path := write(t, "jobs: 3\n")
	v := viper.New()
	v.Set("format", "yaml")
	cfg, err := Load(path, v)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Jobs)
	require.Equal(t, FormatYAML, cfg.Format)
	require.Equal(t, Default().SimWords, cfg.SimWords)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(write(t, "format: json\n"), viper.New())
	require.ErrorIs(t, err, ErrFormat)

	_, err = Load(write(t, "jobs: 0\n"), viper.New())
	require.ErrorIs(t, err, ErrJobs)

	_, err = Load(write(t, "sim-words: -1\n"), viper.New())
	require.ErrorIs(t, err, ErrSimWords)

	_, err = Load(write(t, "unknown: 1\n"), viper.New())
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), viper.New())
	require.Error(t, err)
}
