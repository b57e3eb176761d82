// SPDX-License-Identifier: MIT
// Package: stencilkit/cmd/stencilkit
//
// bench_cmd.go — times the reference diffusion and appends to the log.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/katalvlaran/stencilkit/bench"
	"github.com/katalvlaran/stencilkit/field"
	"github.com/katalvlaran/stencilkit/results"
	"github.com/katalvlaran/stencilkit/stencil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newBenchCmd(a *app) *cobra.Command {
	var test string
	var noSave bool
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the diffusion stencil and record the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.validateBench(); err != nil {
				return err
			}
			order, err := a.cfg.axisOrder()
			if err != nil {
				return err
			}
			f, err := a.cfg.newField()
			if err != nil {
				return err
			}
			if f, err = field.Canonical(f, order); err != nil {
				return err
			}

			bc := a.cfg.Bench
			a.log.WithFields(logrus.Fields{
				"test":   test,
				"shape":  f.Shape(),
				"iters":  bc.Iters,
				"repeat": bc.Repeat,
				"number": bc.Number,
			}).Debug("benchmark starting")

			// Validate once so Timeit only measures successful runs.
			if _, err = stencil.Diffuse(f, bc.Alpha, a.cfg.Field.Halo, bc.Iters); err != nil {
				return err
			}
			run := bench.Timeit(func() {
				_, _ = stencil.Diffuse(f, bc.Alpha, a.cfg.Field.Halo, bc.Iters)
			}, bench.WithRepeat(bc.Repeat), bench.WithNumber(bc.Number))
			timing := run.Timing()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (best %s s)\n", test, timing, formatSeconds(run.Best()))

			if noSave {
				return nil
			}
			path := a.cfg.Results.File
			var opts []results.SaveOption
			if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) && a.cfg.Results.Header {
				opts = append(opts, results.WithHeader())
			}
			if err = results.Save(path, test, &timing, opts...); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"test": test, "path": path}).Info("timing recorded")

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&test, "test", "diffuse", "Test name recorded in the log")
	fl.BoolVar(&noSave, "no-save", false, "Do not append to the log")
	fl.Int("repeat", bench.DefaultRepeat, "Timed rounds")
	fl.Int("number", bench.DefaultNumber, "Loops per round")
	fl.Int("iters", 32, "Diffusion steps per loop")
	fl.Float64("alpha", 1.0/64, "Diffusion coefficient")
	_ = a.v.BindPFlag("bench.repeat", fl.Lookup("repeat"))
	_ = a.v.BindPFlag("bench.number", fl.Lookup("number"))
	_ = a.v.BindPFlag("bench.iters", fl.Lookup("iters"))
	_ = a.v.BindPFlag("bench.alpha", fl.Lookup("alpha"))

	return cmd
}

// formatSeconds matches the log's two-decimal scientific notation.
func formatSeconds(s float64) string {
	return fmt.Sprintf("%.2e", s)
}
