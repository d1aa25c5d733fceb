// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slog"
)

type captureSink struct {
	got []captured
}

type captured struct {
	Level slog.Level
	Msg   string
	Attrs map[string]any
}

func (s *captureSink) emit(level slog.Level, t time.Time, msg string, attrs []slog.Attr) error {
	m := map[string]any{}
	for _, a := range attrs {
		m[a.Key] = a.Value.Any()
	}
	s.got = append(s.got, captured{Level: level, Msg: msg, Attrs: m})
	return nil
}

func TestHandlerFlattensGroups(t *testing.T) {
	s := &captureSink{}
	l := slog.New(newHandler(s, slog.LevelInfo))
	l = l.With("session", "s1").WithGroup("sort")
	l.Info("merged", "runs", 3, slog.Group("cache", slog.Int("hits", 2), slog.Int("queries", 5)))
	l.Debug("hidden")

	want := []captured{{
		Level: slog.LevelInfo,
		Msg:   "merged",
		Attrs: map[string]any{
			"session":            "s1",
			"sort.runs":          int64(3),
			"sort.cache.hits":    int64(2),
			"sort.cache.queries": int64(5),
		},
	}}
	if diff := cmp.Diff(want, s.got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestNewFormats(t *testing.T) {
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(&buf, Options{Format: format, Level: slog.LevelInfo})
			if err != nil {
				t.Fatal(err)
			}
			l.Debug("too quiet")
			l.Info("sorted", "items", 12, "file", "answers.txt")
			out := buf.String()
			for _, want := range []string{"sorted", "12", "answers.txt"} {
				if !strings.Contains(out, want) {
					t.Errorf("output %q does not contain %q", out, want)
				}
			}
			if strings.Contains(out, "too quiet") {
				t.Errorf("debug record logged at info level: %q", out)
			}
		})
	}
}

func TestNewUnknownFormat(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Format: "xml"}); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestParseLevel(t *testing.T) {
	for _, test := range []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	} {
		got, err := ParseLevel(test.in)
		if err != nil || got != test.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", test.in, got, err, test.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) succeeded")
	}
}
