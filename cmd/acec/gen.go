// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-air/acec/aig/aiger"
	"github.com/go-air/acec/gen"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		cin    bool
		binary bool
		out    string
	)
	cmd := &cobra.Command{
		Use:       "gen adder|mult n",
		Short:     "write a generated arithmetic circuit in aiger format",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"adder", "mult"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil || n <= 0 {
				return errors.Errorf("bad width %q", args[1])
			}
			var g *aiger.T
			switch args[0] {
			case "adder":
				g = gen.RippleCarryAiger(n, cin)
			case "mult":
				g = gen.ArrayMultiplierAiger(n)
			default:
				return errors.Errorf("unknown circuit %q", args[0])
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if binary {
				err = g.WriteBinary(w)
			} else {
				err = g.WriteAscii(w)
			}
			if err != nil {
				return errors.Wrap(err, "write aiger")
			}
			a.log.Debug("generated", zap.String("circuit", args[0]), zap.Int("bits", n), zap.Int("ands", g.NumAnds()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&cin, "cin", false, "adder has a carry in")
	cmd.Flags().BoolVarP(&binary, "binary", "b", false, "write binary aiger")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to `file` instead of stdout")
	return cmd
}
