// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"golang.org/x/exp/slog"
)

type logrSink struct {
	l logr.Logger
}

// newLogrSink returns a sink writing funcr's JSON encoding to w.
// Debug records are logged at verbosity 1, everything else at 0.
func newLogrSink(w io.Writer) *logrSink {
	l := funcr.NewJSON(func(obj string) { fmt.Fprintln(w, obj) }, funcr.Options{Verbosity: 1})
	return &logrSink{l: l}
}

func (s *logrSink) emit(level slog.Level, t time.Time, msg string, attrs []slog.Attr) error {
	kvs := make([]interface{}, 0, 2*len(attrs))
	var err error
	for _, a := range attrs {
		if e, ok := a.Value.Any().(error); ok && err == nil && level >= slog.LevelError {
			err = e
			continue
		}
		kvs = append(kvs, a.Key, a.Value.Any())
	}
	if level >= slog.LevelError {
		s.l.Error(err, msg, kvs...)
		return nil
	}
	s.l.V(convertVerbosity(level)).Info(msg, kvs...)
	return nil
}

func convertVerbosity(level slog.Level) int {
	if level < slog.LevelInfo {
		return 1
	}
	return 0
}
