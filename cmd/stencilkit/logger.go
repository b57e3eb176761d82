// SPDX-License-Identifier: MIT
// Package: stencilkit/cmd/stencilkit
//
// logger.go — logrus setup. Only the CLI logs; library packages return errors.

package main

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// setupLogger returns a text logger writing to w. Verbose forces debug.
func setupLogger(cfg LogConfig, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
		return logger
	}
	switch strings.ToLower(cfg.Level) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
