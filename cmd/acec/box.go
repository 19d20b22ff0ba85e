// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/go-air/acec/acec"
	"github.com/go-air/acec/config"
	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/internal/metrics"
	"github.com/go-air/acec/phase"
)

func newBoxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "box file...",
		Short: "print the arithmetic box of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Jobs)
			boxes := make([]*acec.Box, len(args))
			for i, p := range args {
				i, p := i, p
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					start := time.Now()
					defer metrics.ObserveSince(a.fileTime.WithLabelValues("box"), start)
					net, err := readAiger(p)
					if err != nil {
						return err
					}
					boxes[i], err = a.produce(p, net)
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return a.writeBoxes(cmd.OutOrStdout(), args, boxes)
		},
	}
}

// recorder keeps the xor cuts of the last run for CheckXors.
type recorder struct {
	cut.Engine
	xors []cut.Xor
}

func (r *recorder) ComputeCuts(g cut.Graph) ([]cut.Adder, []cut.Xor) {
	adds, xors := r.Engine.ComputeCuts(g)
	r.xors = xors
	return adds, xors
}

// produce runs ProduceBox, turning invariant failures into errors.
func (a *app) produce(name string, net acec.Network) (box *acec.Box, err error) {
	log := a.log.With(zap.String("file", name))
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *acec.InvariantError:
			err = errors.Wrap(e, name)
		case *phase.Error:
			err = errors.Wrap(e, name)
		default:
			panic(r)
		}
		log.Error("reconstruction failed", zap.Error(err))
	}()
	rec := &recorder{Engine: cut.Engine{MaxCuts: a.cfg.MaxCuts}}
	box = acec.ProduceBox(net,
		acec.WithLogger(log),
		acec.WithVerbose(a.cfg.Verbose),
		acec.WithCutEngine(rec),
		acec.WithPhaseEngine(&phase.Engine{Logger: log}),
		acec.WithMetrics(a.box))
	if a.cfg.Verbose {
		if rep := acec.CheckXors(net, rec.xors); !rep.Clean() {
			log.Warn("xor check",
				zap.Int("multiple", len(rep.Multiple)),
				zap.Int("unrecognized", len(rep.Unrecognized)))
		}
	}
	return box, nil
}

type fileBox struct {
	File string     `yaml:"file"`
	Box  *acec.View `yaml:"box"`
}

func (a *app) writeBoxes(w io.Writer, names []string, boxes []*acec.Box) error {
	if a.cfg.Format == config.FormatYAML {
		fbs := make([]fileBox, len(boxes))
		for i, b := range boxes {
			fbs[i] = fileBox{File: names[i], Box: b.View()}
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(fbs); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	}
	for i, b := range boxes {
		if _, err := fmt.Fprintf(w, "%s:\n", names[i]); err != nil {
			return err
		}
		if err := b.Print(w); err != nil {
			return err
		}
	}
	return nil
}
