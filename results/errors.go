// SPDX-License-Identifier: MIT
// Package: stencilkit/results
//
// errors.go — sentinel errors for the results package.
// Callers MUST use errors.Is(err, ErrX); messages are part of the contract.

package results

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a bad argument (empty test name, unknown
	// compare mode, a > b for FasterPercent).
	ErrInvalidArgument = errors.New("results: invalid argument")

	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("results: missing column")

	// ErrMalformedRow indicates a row whose fields cannot be parsed.
	ErrMalformedRow = errors.New("results: malformed row")
)

// resultsErrorf prefixes err with the method and a formatted detail.
func resultsErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
