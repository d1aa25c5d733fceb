// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slog"
)

type logrusSink struct {
	l *logrus.Logger
}

func newLogrusSink(w io.Writer) *logrusSink {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.TraceLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return &logrusSink{l: l}
}

func (s *logrusSink) emit(level slog.Level, t time.Time, msg string, attrs []slog.Attr) error {
	fields := make(logrus.Fields, len(attrs))
	for _, a := range attrs {
		fields[a.Key] = a.Value.Any()
	}
	e := s.l.WithFields(fields)
	if !t.IsZero() {
		e = e.WithTime(t)
	}
	e.Log(convertLogrusLevel(level), msg)
	return nil
}

func convertLogrusLevel(level slog.Level) logrus.Level {
	switch {
	case level >= slog.LevelError:
		return logrus.ErrorLevel
	case level >= slog.LevelWarn:
		return logrus.WarnLevel
	case level >= slog.LevelInfo:
		return logrus.InfoLevel
	case level >= slog.LevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
