// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/currentflow/internal/config"
)

// initLog builds the logger for one invocation, writing to w.
func initLog(cfg config.LogConfig, w io.Writer) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)

	switch cfg.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		l.SetFormatter(&logrus.TextFormatter{})
	case "color":
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	default:
		return nil, fmt.Errorf("unrecognized log format %q", cfg.Format)
	}

	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("unrecognized log level: %w", err)
	}
	l.SetLevel(lvl)

	return l, nil
}
