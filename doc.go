// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package humansort sorts slices with comparators that are expensive to
// call, such as a person answering "which of these two comes first?".
//
// The sort is a natural merge sort. A single sweep splits the input into
// maximal monotonic runs, descending runs are reversed in place, and adjacent
// runs are then merged pairwise, bottom-up, by rotating elements inside the
// slice. No auxiliary buffer is allocated. The algorithm spends element moves
// to save comparisons: already ordered input costs n-1 comparisons, and a
// merge of two runs of lengths p and q never costs more than p+q-1.
//
// The comparator may fail. A failed comparison stops the sort and leaves the
// slice holding a permutation of its original contents.
//
// Memoization of answers lives in package golang.org/x/exp/humansort/memo and
// interactive oracles in golang.org/x/exp/humansort/oracle.
package humansort
