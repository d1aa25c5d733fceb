// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"golang.org/x/exp/slog"
)

type kitSink struct {
	l log.Logger
}

func newKitSink(w io.Writer) *kitSink {
	return &kitSink{l: log.NewLogfmtLogger(log.NewSyncWriter(w))}
}

func (s *kitSink) emit(lvl slog.Level, t time.Time, msg string, attrs []slog.Attr) error {
	kvs := make([]interface{}, 0, 6+2*len(attrs))
	if !t.IsZero() {
		kvs = append(kvs, "ts", t)
	}
	kvs = append(kvs, level.Key(), convertKitLevel(lvl), "msg", msg)
	for _, a := range attrs {
		kvs = append(kvs, a.Key, a.Value.Any())
	}
	return s.l.Log(kvs...)
}

func convertKitLevel(lvl slog.Level) level.Value {
	switch {
	case lvl >= slog.LevelError:
		return level.ErrorValue()
	case lvl >= slog.LevelWarn:
		return level.WarnValue()
	case lvl >= slog.LevelInfo:
		return level.InfoValue()
	default:
		return level.DebugValue()
	}
}
