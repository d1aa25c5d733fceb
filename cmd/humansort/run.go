// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"io/fs"

	"golang.org/x/exp/humansort"
	"golang.org/x/exp/humansort/internal/config"
	"golang.org/x/exp/humansort/internal/logging"
	"golang.org/x/exp/humansort/lines"
	"golang.org/x/exp/humansort/memo"
	"golang.org/x/exp/humansort/oracle"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

func run(cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(stderr, logging.Options{Format: cfg.LogFormat, Level: level})
	if err != nil {
		return err
	}

	// Items and answers may share stdin, so there is exactly one reader.
	in := bufio.NewReader(stdin)
	items, err := readItems(cfg, in)
	if err != nil {
		return err
	}
	logger.Debug("read items", "n", len(items))

	console := oracle.NewConsole[string](in, stdout)
	console.Logger = logger
	cache := memo.New[string](oracle.Comparator[string](console))
	cache.Logger = logger
	console.Save = func(name string) error { return memo.SaveFile(name, cache) }

	if cfg.State != "" {
		switch err := memo.LoadFile(cfg.State, cache); {
		case err == nil:
			logger.Info("loaded answers", "file", cfg.State, "answers", cache.Len())
		case xerrors.Is(err, fs.ErrNotExist):
			logger.Info("starting without saved answers", "file", cfg.State)
		default:
			return err
		}
	}

	sorter := humansort.Sorter[string]{Compare: cache, Logger: logger}
	st, sortErr := sorter.Sort(items)
	if cfg.State != "" {
		if err := memo.SaveFile(cfg.State, cache); err != nil {
			if sortErr == nil {
				return err
			}
			logger.Error("saving answers", "file", cfg.State, "err", err)
		} else if sortErr != nil {
			logger.Warn("stopped early; run again with the same --state to resume", "file", cfg.State, "answers", cache.Len())
		}
	}
	if sortErr != nil {
		return sortErr
	}
	logStats(logger, len(items), st, cache.Stats())

	if cfg.Output != "" {
		return lines.WriteFile(cfg.Output, items)
	}
	return lines.Print(stdout, items)
}

func readItems(cfg config.Config, in *bufio.Reader) ([]string, error) {
	var (
		items []string
		err   error
	)
	if cfg.Input != "" {
		items, err = lines.ReadFile(cfg.Input)
	} else {
		items, err = lines.ReadCounted(in)
	}
	if err != nil {
		return nil, err
	}
	form, ok, err := lines.ParseForm(cfg.Normalize)
	if err != nil {
		return nil, err
	}
	if ok {
		lines.Normalize(items, form)
	}
	return items, nil
}

func logStats(logger *slog.Logger, n int, st humansort.Stats, cs memo.Stats) {
	logger.Info("sorted",
		"items", n,
		slog.Group("sort",
			slog.Int("runs", st.Runs),
			slog.Int("merges", st.Merges),
			slog.Int("comparisons", st.Comparisons),
			slog.Int("moves", st.Moves)),
		slog.Group("answers",
			slog.Int("asked", cs.Queries),
			slog.Int("replayed", cs.Hits)))
}
