// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package humansort

// mergeAdjacent merges the ascending runs list[l0:l1] and list[l1:r1] in
// place and reports the number of element writes it made.
//
// i walks the left run and j the right run. Whenever list[j] sorts strictly
// before list[i], list[i:j+1] is rotated right by one so that list[j] lands
// at i and the left run shifts up. Equal elements are never rotated past each
// other, which keeps the merge stable. Every comparison advances i, so at
// most r1-l0-1 comparisons are made.
func mergeAdjacent[E any](list []E, l0, l1, r1 int, cmp Comparator[E]) (moves int, err error) {
	i, j := l0, l1
	for i < j && j < r1 {
		o, err := cmp.Compare(list[j], list[i])
		if err != nil {
			return moves, err
		}
		if o == Less {
			moves += rotateRight(list[i : j+1])
			j++
		}
		i++
	}
	return moves, nil
}

// rotateRight moves the last element of s to the front, shifting the others
// up by one, and returns the number of element writes.
func rotateRight[E any](s []E) int {
	last := s[len(s)-1]
	copy(s[1:], s[:len(s)-1])
	s[0] = last
	return len(s)
}

// mergePass merges runs pairwise, (0,1), (2,3), ..., carrying an odd last
// run over unchanged. The result reuses the backing array of runs.
func mergePass[E any](list []E, runs []run, cmp Comparator[E], st *Stats) ([]run, error) {
	merged := runs[:0]
	for k := 0; k < len(runs); k += 2 {
		if k+1 == len(runs) {
			merged = append(merged, runs[k])
			break
		}
		left, right := runs[k], runs[k+1]
		moves, err := mergeAdjacent(list, left.Start, left.End, right.End, cmp)
		st.Moves += moves
		if err != nil {
			return nil, err
		}
		st.Merges++
		merged = append(merged, run{Run: Run{Start: left.Start, End: right.End}, dir: ascending})
	}
	return merged, nil
}
