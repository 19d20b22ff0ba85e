// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-air/acec/aig/aiger"
	"github.com/go-air/acec/cec"
)

var (
	errBoxesDiffer = errors.New("boxes differ")
	errNotEquiv    = errors.New("outputs differ")
)

func newCecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cec a b",
		Short: "compare the arithmetic boxes of two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var nets [2]*aiger.T
			for i, p := range args {
				net, err := readAiger(p)
				if err != nil {
					return err
				}
				nets[i] = net
			}
			ba, err := a.produce(args[0], nets[0])
			if err != nil {
				return err
			}
			bb, err := a.produce(args[1], nets[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			res, err := cec.CompareBoxes(ba, bb, a.cfg.SimWords, a.cfg.Seed)
			if err != nil {
				return err
			}
			for _, d := range res.Diffs {
				fmt.Fprintln(w, d)
			}
			if !res.Equal() {
				return errors.Wrapf(errBoxesDiffer, "%d differences", len(res.Diffs))
			}
			fmt.Fprintln(w, "boxes equivalent")
			if !a.cfg.Miter {
				return nil
			}
			eq, cex, err := cec.Miter(nets[0].Network, nets[1].Network)
			if err != nil {
				return err
			}
			if !eq {
				a.log.Info("counterexample", zap.Bools("inputs", cex))
				return errNotEquiv
			}
			fmt.Fprintln(w, "outputs equivalent")
			return nil
		},
	}
}
