// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slog"
)

type zerologSink struct {
	l zerolog.Logger
}

func newZerologSink(w io.Writer) *zerologSink {
	return &zerologSink{l: zerolog.New(zerolog.SyncWriter(w))}
}

func (s *zerologSink) emit(level slog.Level, t time.Time, msg string, attrs []slog.Attr) error {
	e := s.l.WithLevel(convertZerologLevel(level))
	if e == nil {
		return nil
	}
	if !t.IsZero() {
		e = e.Time(zerolog.TimestampFieldName, t)
	}
	for _, a := range attrs {
		v := a.Value
		switch v.Kind() {
		case slog.KindString:
			e = e.Str(a.Key, v.String())
		case slog.KindInt64:
			e = e.Int64(a.Key, v.Int64())
		case slog.KindUint64:
			e = e.Uint64(a.Key, v.Uint64())
		case slog.KindFloat64:
			e = e.Float64(a.Key, v.Float64())
		case slog.KindBool:
			e = e.Bool(a.Key, v.Bool())
		case slog.KindDuration:
			e = e.Dur(a.Key, v.Duration())
		case slog.KindTime:
			e = e.Time(a.Key, v.Time())
		default:
			if err, ok := v.Any().(error); ok {
				e = e.AnErr(a.Key, err)
			} else {
				e = e.Interface(a.Key, v.Any())
			}
		}
	}
	e.Msg(msg)
	return nil
}

func convertZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
