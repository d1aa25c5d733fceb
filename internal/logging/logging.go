// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the slog.Logger used by the humansort command.
//
// Besides slog's own text and JSON handlers it can route records to zap,
// zerolog, logrus, logr or go-kit, for people who already have tooling
// around one of those formats.
package logging

import (
	"io"
	"strings"

	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

// Formats lists the accepted values of Options.Format.
var Formats = []string{"text", "json", "zap", "zerolog", "logrus", "logr", "logfmt"}

// Options configure New.
type Options struct {
	Format string // one of Formats; "" means "text"
	Level  slog.Leveler
}

// New returns a logger writing to w in the requested format.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "json":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "zap":
		h = newHandler(newZapSink(w), level)
	case "zerolog":
		h = newHandler(newZerologSink(w), level)
	case "logrus":
		h = newHandler(newLogrusSink(w), level)
	case "logr":
		h = newHandler(newLogrSink(w), level)
	case "logfmt":
		h = newHandler(newKitSink(w), level)
	default:
		return nil, xerrors.Errorf("unknown log format %q (want one of %s)", opts.Format, strings.Join(Formats, ", "))
	}
	return slog.New(h), nil
}

// ParseLevel parses a level name such as "debug", "info", "warn" or
// "error", case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, xerrors.Errorf("log level: %w", err)
	}
	return l, nil
}
