// SPDX-License-Identifier: MIT
// Package: stencilkit/cmd/stencilkit
//
// results_cmd.go — queries over the timing log.

package main

import (
	"fmt"

	"github.com/katalvlaran/stencilkit/results"
	"github.com/spf13/cobra"
)

func newResultsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Read and compare recorded timings",
	}
	cmd.AddCommand(newResultsReadCmd(a), newResultsCompareCmd(a))

	return cmd
}

func newResultsReadCmd(a *app) *cobra.Command {
	var q results.Query
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Print the log rows matching --test and --host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := results.Read(a.cfg.Results.File, q)
			if err != nil {
				return err
			}
			a.log.WithField("rows", len(recs)).Debug("log read")
			out := cmd.OutOrStdout()
			for _, r := range recs {
				t := results.Timing{Average: r.Average, Stdev: r.Stdev}
				fmt.Fprintf(out, "%s  %s  %s  %s\n",
					r.Timestamp.Format(results.TimestampLayout), r.Hostname, r.Test, t)
			}

			return nil
		},
	}
	cmd.Flags().StringSliceVar(&q.Tests, "test", nil, "Tests to include (default all)")
	cmd.Flags().StringSliceVar(&q.Hosts, "host", nil, "Hosts to include (default all)")

	return cmd
}

func newResultsCompareCmd(a *app) *cobra.Command {
	var hosts []string
	var mode string
	cmd := &cobra.Command{
		Use:   "compare <fast-test> <slow-test>",
		Short: "Report how much faster one test is than another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := results.ParseCompareMode(mode)
			if err != nil {
				return err
			}
			fast, err := a.meanOf(args[0], hosts)
			if err != nil {
				return err
			}
			slow, err := a.meanOf(args[1], hosts)
			if err != nil {
				return err
			}
			phrase, err := results.Compare(fast, slow, m)
			if err != nil {
				return err
			}
			unit := "x"
			if m == results.FasterPercent || phrase == results.Infinity {
				unit = ""
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is %s%s faster than %s\n", args[0], phrase, unit, args[1])

			return nil
		},
	}
	cmd.Flags().StringSliceVar(&hosts, "host", nil, "Hosts to include (default all)")
	cmd.Flags().StringVar(&mode, "mode", "faster", "faster or faster-%")

	return cmd
}

// meanOf returns the mean timing of test. When several rows match, the
// most recent one wins.
func (a *app) meanOf(test string, hosts []string) (float64, error) {
	recs, err := results.Read(a.cfg.Results.File, results.Query{Tests: []string{test}, Hosts: hosts})
	if err != nil {
		return 0, err
	}
	if avg, ok := results.Scalar(recs); ok {
		return avg, nil
	}
	if len(recs) == 0 {
		return 0, fmt.Errorf("no rows for test %q in %s", test, a.cfg.Results.File)
	}
	a.log.WithField("test", test).WithField("rows", len(recs)).Debug("several rows matched, using the latest")

	return results.Averages(recs)[len(recs)-1], nil
}
