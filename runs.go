// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package humansort

import "fmt"

// A Run is the half-open index range [Start, End) of a slice.
type Run struct {
	Start, End int
}

// Len returns the number of elements in r.
func (r Run) Len() int { return r.End - r.Start }

func (r Run) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

type direction uint8

const (
	unset direction = iota
	ascending
	descending
)

// run is a Run together with the direction observed while detecting it.
type run struct {
	Run
	dir direction
}

// detectRuns splits list into maximal monotonic runs in one left-to-right
// sweep, calling cmp at most len(list)-1 times.
//
// Ascending runs are non-decreasing. Descending runs are strictly
// decreasing, so reversing them never reorders equal elements.
func detectRuns[E any](list []E, cmp Comparator[E]) ([]run, error) {
	if len(list) == 0 {
		return nil, nil
	}
	var runs []run
	cur := run{Run: Run{Start: 0, End: 1}}
	for i := 0; i+1 < len(list); i++ {
		o, err := cmp.Compare(list[i], list[i+1])
		if err != nil {
			return runs, err
		}
		switch cur.dir {
		case unset:
			if o == Greater {
				cur.dir = descending
			} else {
				cur.dir = ascending
			}
		case ascending:
			if o == Greater {
				runs = append(runs, cur)
				cur = run{Run: Run{Start: i + 1, End: i + 1}}
			}
		case descending:
			if o != Greater {
				runs = append(runs, cur)
				cur = run{Run: Run{Start: i + 1, End: i + 1}}
			}
		}
		cur.End = i + 2
	}
	return append(runs, cur), nil
}

// Runs reports the maximal monotonic runs of list under cmp. The runs
// partition [0, len(list)) in order. Runs does not modify list.
func Runs[E any](list []E, cmp Comparator[E]) ([]Run, error) {
	rs, err := detectRuns(list, cmp)
	if err != nil || len(rs) == 0 {
		return nil, err
	}
	out := make([]Run, len(rs))
	for i, r := range rs {
		out[i] = r.Run
	}
	return out, nil
}

// normalizeRuns reverses every descending run in place and returns how many
// were reversed. It does not compare anything: direction comes from
// detection.
func normalizeRuns[E any](list []E, runs []run) int {
	n := 0
	for i := range runs {
		r := &runs[i]
		if r.dir != descending {
			continue
		}
		reverse(list[r.Start:r.End])
		r.dir = ascending
		n++
	}
	return n
}

func reverse[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
