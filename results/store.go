// SPDX-License-Identifier: MIT
// Package: stencilkit/results
//
// store.go — appending timing rows to the CSV log.
//
// Contract:
//   • Save(path, test, timing, opts...) appends one row, creating the file if
//     needed. A nil timing writes nothing but still honours WithOverwrite and
//     WithHeader, which is how a fresh log is started.
//   • WithOverwrite truncates the file before writing.
//   • WithHeader writes the header row before the data row.
//   • Hostname and clock are injectable for tests; defaults are os.Hostname
//     and time.Now in UTC.

package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Columns of the CSV log, in file order.
const (
	ColTimestamp = "timestamp"
	ColHostname  = "hostname"
	ColTest      = "test"
	ColAverage   = "timeit_avg"
	ColStdev     = "timeit_std"
)

// Header is the header row written by WithHeader.
var Header = []string{ColTimestamp, ColHostname, ColTest, ColAverage, ColStdev}

// TimestampLayout formats timestamps with microsecond precision.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// DefaultFile is the log file used when callers do not choose one.
const DefaultFile = "results.csv"

// Timing is the summary of one timed benchmark: mean and standard deviation
// of the per-loop time, in seconds.
type Timing struct {
	Average float64
	Stdev   float64
}

// SaveOption customizes Save.
type SaveOption func(*saveConfig)

type saveConfig struct {
	overwrite bool
	header    bool
	hostname  func() (string, error)
	now       func() time.Time
}

func newSaveConfig(opts ...SaveOption) saveConfig {
	cfg := saveConfig{
		hostname: os.Hostname,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOverwrite truncates the log before writing.
func WithOverwrite() SaveOption {
	return func(c *saveConfig) { c.overwrite = true }
}

// WithHeader writes the header row before any data row.
func WithHeader() SaveOption {
	return func(c *saveConfig) { c.header = true }
}

// WithHostname overrides the hostname lookup. Panics on nil.
func WithHostname(fn func() (string, error)) SaveOption {
	if fn == nil {
		panic("results: WithHostname(nil)")
	}

	return func(c *saveConfig) { c.hostname = fn }
}

// WithClock overrides the timestamp source. Panics on nil.
func WithClock(fn func() time.Time) SaveOption {
	if fn == nil {
		panic("results: WithClock(nil)")
	}

	return func(c *saveConfig) { c.now = fn }
}

// Save appends a row for test to the log at path.
// Returns ErrInvalidArgument when timing is non-nil and test is empty.
func Save(path, test string, timing *Timing, opts ...SaveOption) (err error) {
	const method = "Save"
	if timing != nil && test == "" {
		return resultsErrorf(method, ErrInvalidArgument, "empty test name")
	}
	cfg := newSaveConfig(opts...)

	var row []string
	if timing != nil {
		host, herr := cfg.hostname()
		if herr != nil {
			return resultsErrorf(method, herr, "hostname")
		}
		row = []string{
			cfg.now().UTC().Format(TimestampLayout),
			host,
			test,
			formatSci(timing.Average),
			formatSci(timing.Stdev),
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if cfg.overwrite {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return resultsErrorf(method, err, "open %s", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = resultsErrorf(method, cerr, "close %s", path)
		}
	}()

	w := csv.NewWriter(file)
	if cfg.header {
		if err = w.Write(Header); err != nil {
			return resultsErrorf(method, err, "write header")
		}
	}
	if row != nil {
		if err = w.Write(row); err != nil {
			return resultsErrorf(method, err, "write row")
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return resultsErrorf(method, err, "flush")
	}

	return nil
}

// formatSci renders v as two-decimal scientific notation, e.g. 4.21e-02.
func formatSci(v float64) string {
	return strconv.FormatFloat(v, 'e', 2, 64)
}

// String renders the timing the way the log stores it.
func (t Timing) String() string {
	return fmt.Sprintf("%s ± %s s", formatSci(t.Average), formatSci(t.Stdev))
}
