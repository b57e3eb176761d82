// SPDX-License-Identifier: MIT
// Package: stencilkit/results
//
// read.go — loading and filtering the CSV log.

package results

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"time"
)

// Record is one parsed row of the log.
type Record struct {
	Timestamp time.Time
	Hostname  string
	Test      string
	Average   float64
	Stdev     float64
}

// Query selects rows. Empty slices match everything.
type Query struct {
	Tests []string
	Hosts []string
}

// match reports whether r satisfies q.
func (q Query) match(r Record) bool {
	return contains(q.Tests, r.Test) && contains(q.Hosts, r.Hostname)
}

func contains(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}

	return false
}

// timestampLayouts are tried in order when parsing; the second accepts rows
// written without fractional seconds.
var timestampLayouts = []string{"2006-01-02 15:04:05.999999999", time.RFC3339Nano}

// Read loads the log at path and returns the rows matching q, in file order.
// The first row must be a header naming at least the five log columns.
func Read(path string, q Query) ([]Record, error) {
	const method = "Read"
	file, err := os.Open(path)
	if err != nil {
		return nil, resultsErrorf(method, err, "open %s", path)
	}
	defer file.Close()

	recs, err := Parse(file, q)
	if err != nil {
		return nil, resultsErrorf(method, err, "%s", path)
	}

	return recs, nil
}

// Parse reads a log from r and returns the rows matching q.
func Parse(r io.Reader, q Query) ([]Record, error) {
	const method = "Parse"
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, resultsErrorf(method, ErrMissingColumn, "empty file")
	}
	if err != nil {
		return nil, resultsErrorf(method, err, "header")
	}
	cols, err := columnIndex(head)
	if err != nil {
		return nil, resultsErrorf(method, err, "")
	}

	var out []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, resultsErrorf(method, err, "line %d", line)
		}
		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, resultsErrorf(method, err, "line %d", line)
		}
		if q.match(rec) {
			out = append(out, rec)
		}
	}

	return out, nil
}

// columnIndex maps each required column to its position in head.
func columnIndex(head []string) (map[string]int, error) {
	idx := make(map[string]int, len(head))
	for i, name := range head {
		idx[name] = i
	}
	for _, name := range Header {
		if _, ok := idx[name]; !ok {
			return nil, resultsErrorf("header", ErrMissingColumn, "%q", name)
		}
	}

	return idx, nil
}

func parseRow(row []string, cols map[string]int) (Record, error) {
	get := func(name string) (string, error) {
		i := cols[name]
		if i >= len(row) {
			return "", resultsErrorf("row", ErrMalformedRow, "missing %s", name)
		}
		return row[i], nil
	}

	var (
		rec Record
		s   string
		err error
	)
	if s, err = get(ColTimestamp); err != nil {
		return rec, err
	}
	if rec.Timestamp, err = parseTimestamp(s); err != nil {
		return rec, resultsErrorf("row", ErrMalformedRow, "timestamp %q", s)
	}
	if rec.Hostname, err = get(ColHostname); err != nil {
		return rec, err
	}
	if rec.Test, err = get(ColTest); err != nil {
		return rec, err
	}
	if s, err = get(ColAverage); err != nil {
		return rec, err
	}
	if rec.Average, err = strconv.ParseFloat(s, 64); err != nil {
		return rec, resultsErrorf("row", ErrMalformedRow, "%s %q", ColAverage, s)
	}
	if s, err = get(ColStdev); err != nil {
		return rec, err
	}
	if rec.Stdev, err = strconv.ParseFloat(s, 64); err != nil {
		return rec, resultsErrorf("row", ErrMalformedRow, "%s %q", ColStdev, s)
	}

	return rec, nil
}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}

// Averages returns the mean timing of each record.
func Averages(recs []Record) []float64 {
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = r.Average
	}

	return out
}

// AveragesWithStd returns (mean, stdev) pairs.
func AveragesWithStd(recs []Record) [][2]float64 {
	out := make([][2]float64, len(recs))
	for i, r := range recs {
		out[i] = [2]float64{r.Average, r.Stdev}
	}

	return out
}

// Scalar returns the single mean when exactly one record matched.
// ok is false for zero or several records.
func Scalar(recs []Record) (avg float64, ok bool) {
	if len(recs) != 1 {
		return 0, false
	}

	return recs[0].Average, true
}
