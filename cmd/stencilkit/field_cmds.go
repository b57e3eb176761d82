// SPDX-License-Identifier: MIT
// Package: stencilkit/cmd/stencilkit
//
// field_cmds.go — init, plot and show: generate a field and export or view it.

package main

import (
	"fmt"

	"github.com/katalvlaran/stencilkit/field"
	"github.com/katalvlaran/stencilkit/fieldio"
	"github.com/katalvlaran/stencilkit/plot"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// fieldFields describes f for log entries.
func fieldFields(f *field.Field, order field.AxisOrder) logrus.Fields {
	return logrus.Fields{
		"shape":  f.Shape(),
		"order":  order.String(),
		"layout": f.Layout().String(),
		"dtype":  f.DType().String(),
	}
}

func newInitCmd(a *app) *cobra.Command {
	var out, name string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a field and write it to HDF5",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.cfg.axisOrder()
			if err != nil {
				return err
			}
			f, err := a.cfg.newField()
			if err != nil {
				return err
			}
			if err = fieldio.WriteHDF5(out, f, name); err != nil {
				return err
			}
			a.log.WithFields(fieldFields(f, order)).WithField("path", out).Info("field written")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: /%s %v\n", out, name, f.Shape())

			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "field.h5", "HDF5 output file")
	cmd.Flags().StringVar(&name, "name", "in_field", "Dataset name")

	return cmd
}

func newPlotCmd(a *app) *cobra.Command {
	var k int
	var title string
	var autoRange bool
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a Z slice of the field to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.cfg.axisOrder()
			if err != nil {
				return err
			}
			f, err := a.cfg.newField()
			if err != nil {
				return err
			}
			if title == "" {
				title = fmt.Sprintf("%s k=%d", a.cfg.Field.Pattern, k)
			}
			opts := []plot.Option{plot.WithTitle(title)}
			if autoRange {
				opts = append(opts, plot.WithAutoRange())
			}
			out := a.cfg.Plot.Output
			if err = plot.SaveFile(out, f, order, k, opts...); err != nil {
				return err
			}
			a.log.WithFields(fieldFields(f, order)).WithField("path", out).Info("slice plotted")

			return nil
		},
	}
	cmd.Flags().IntVar(&k, "slice", 0, "Z index of the slice")
	cmd.Flags().StringVar(&title, "title", "", "Plot title")
	cmd.Flags().BoolVar(&autoRange, "auto-range", false, "Fit the colour scale to the slice")
	cmd.Flags().String("output", "field.png", "PNG output file")
	_ = a.v.BindPFlag("plot.output", cmd.Flags().Lookup("output"))

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a Z slice of the field as ASCII art",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.cfg.axisOrder()
			if err != nil {
				return err
			}
			f, err := a.cfg.newField()
			if err != nil {
				return err
			}
			slice, err := plot.Slice(f, order, k)
			if err != nil {
				return err
			}

			return plot.ASCII(cmd.OutOrStdout(), slice)
		},
	}
	cmd.Flags().IntVar(&k, "slice", 0, "Z index of the slice")

	return cmd
}
