// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package humansort

import (
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

// Stats describes the work done by one sort.
type Stats struct {
	Runs        int // runs found by detection
	Reversed    int // descending runs reversed in place
	Passes      int // bottom-up merge passes
	Merges      int // pairwise run merges
	Comparisons int // calls to the comparator
	Moves       int // element writes made while merging
}

// A Sorter sorts slices with a fixed comparator.
type Sorter[E any] struct {
	Compare Comparator[E]

	// Logger receives debug records for each phase. A nil Logger is silent.
	Logger *slog.Logger
}

type counter[E any] struct {
	c Comparator[E]
	n *int
}

func (c counter[E]) Compare(a, b E) (Ordering, error) {
	*c.n++
	return c.c.Compare(a, b)
}

// Sort sorts list in ascending order under s.Compare. The sort is stable.
//
// If the comparator fails, Sort returns the error and list holds a
// permutation of its original elements.
func (s *Sorter[E]) Sort(list []E) (Stats, error) {
	var st Stats
	cmp := counter[E]{c: s.Compare, n: &st.Comparisons}

	runs, err := detectRuns[E](list, cmp)
	if err != nil {
		return st, xerrors.Errorf("detecting runs: %w", err)
	}
	st.Runs = len(runs)
	st.Reversed = normalizeRuns(list, runs)
	s.debug("runs detected", "n", len(list), "runs", st.Runs, "reversed", st.Reversed)

	for len(runs) > 1 {
		runs, err = mergePass[E](list, runs, cmp, &st)
		if err != nil {
			return st, xerrors.Errorf("merging runs: %w", err)
		}
		st.Passes++
		s.debug("merge pass", "pass", st.Passes, "runs", len(runs), "comparisons", st.Comparisons)
	}
	return st, nil
}

func (s *Sorter[E]) debug(msg string, args ...any) {
	if s.Logger != nil {
		s.Logger.Debug(msg, args...)
	}
}

// Sort sorts list in ascending order under cmp. See Sorter.Sort.
func Sort[E any](list []E, cmp Comparator[E]) (Stats, error) {
	s := Sorter[E]{Compare: cmp}
	return s.Sort(list)
}

// SortFunc sorts list in ascending order under cmp, which cannot fail.
func SortFunc[E any](list []E, cmp func(a, b E) Ordering) Stats {
	st, _ := Sort[E](list, CompareFunc[E](cmp))
	return st
}

// IsSorted reports whether list is in ascending order under cmp.
func IsSorted[E any](list []E, cmp Comparator[E]) (bool, error) {
	for i := len(list) - 1; i > 0; i-- {
		o, err := cmp.Compare(list[i], list[i-1])
		if err != nil {
			return false, err
		}
		if o == Less {
			return false, nil
		}
	}
	return true, nil
}
