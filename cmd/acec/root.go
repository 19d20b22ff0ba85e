// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/go-air/acec/acec"
	"github.com/go-air/acec/config"
	"github.com/go-air/acec/internal/metrics"
)

type app struct {
	cfg        *config.Config
	log        *zap.Logger
	reg        *prometheus.Registry
	box        *acec.Metrics
	fileTime   *prometheus.HistogramVec
	configPath string
	metricsOut string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	def := config.Default()
	root := &cobra.Command{
		Use:          "acec",
		Short:        "reconstruct and compare arithmetic boxes of and-inverter graphs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}
	fs := root.PersistentFlags()
	fs.StringVarP(&a.configPath, "config", "c", "", "load configuration from `file` (yaml)")
	fs.StringVar(&a.metricsOut, "metrics-out", "", "write prometheus metrics to `file` on exit")
	fs.BoolP("verbose", "v", def.Verbose, "report adder counts and timing")
	fs.String("log-level", def.LogLevel.String(), "log level (debug, info, warn, error)")
	fs.IntP("jobs", "j", def.Jobs, "number of files processed concurrently")
	fs.Int("max-cuts", def.MaxCuts, "cuts kept per node (0 for the default)")
	fs.StringP("format", "f", def.Format, "output format (text, yaml)")
	fs.Int("sim-words", def.SimWords, "64 bit simulation words for box comparison")
	fs.Int64("seed", def.Seed, "simulation seed")
	fs.Bool("miter", def.Miter, "also check output equivalence with a SAT miter")

	root.AddCommand(newBoxCmd(a), newCecCmd(a), newGenCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	v := viper.New()
	if err := bindFlags(v, cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath, v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	zc := zap.NewProductionConfig()
	if cfg.Verbose {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	if a.log, err = zc.Build(); err != nil {
		return errors.Wrap(err, "build logger")
	}
	a.reg = prometheus.NewRegistry()
	a.box = acec.NewMetrics(a.reg)
	a.fileTime = metrics.NewHistogram(a.reg, "file_duration_seconds", "cli", "Time to read and process one file.", []string{"command"})
	return nil
}

// bindFlags binds the config flags of fs to v.  Flags which are not part of
// config.Config are skipped.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" || f.Name == "metrics-out" {
			return
		}
		err = errors.Wrapf(v.BindPFlag(f.Name, f), "bind flag %s", f.Name)
	})
	return err
}

func (a *app) teardown() error {
	defer func() {
		_ = a.log.Sync()
	}()
	if a.metricsOut == "" {
		return nil
	}
	mfs, err := a.reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	f, err := os.Create(a.metricsOut)
	if err != nil {
		return errors.Wrap(err, "create metrics file")
	}
	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			f.Close()
			return errors.Wrapf(err, "write metrics %s", a.metricsOut)
		}
	}
	return f.Close()
}
