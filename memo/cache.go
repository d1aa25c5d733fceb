// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memo memoizes the answers of an expensive comparator.
//
// A Cache asks its comparator at most once per unordered pair of distinct
// elements: the answer for (a, b) also answers (b, a). Caches of strings can
// be saved to and loaded from a line-oriented text format so that an
// interrupted sorting session can be resumed.
package memo

import (
	"golang.org/x/exp/humansort"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

var (
	// ErrEqual reports an attempt to record an answer for an element
	// compared with itself, or an Equal answer.
	ErrEqual = xerrors.New("equal elements are not cached")

	// ErrContradiction reports an answer that disagrees with one already
	// recorded for the same pair.
	ErrContradiction = xerrors.New("answer contradicts an earlier answer")
)

type pair[E comparable] struct {
	a, b E
}

// An Entry is one recorded answer: Compare(A, B) returns Result.
type Entry[E comparable] struct {
	A, B   E
	Result humansort.Ordering
}

// Stats counts how comparisons were resolved.
type Stats struct {
	Hits    int // answered from the cache
	Queries int // forwarded to the underlying comparator
	Equal   int // identical elements, answered without lookup
}

// A Cache is a Comparator that remembers the answers of another.
// A Cache is not safe for concurrent use.
type Cache[E comparable] struct {
	cmp     humansort.Comparator[E]
	answers map[pair[E]]humansort.Ordering
	order   []pair[E]
	stats   Stats

	// Logger, if non-nil, receives a warning when the underlying comparator
	// calls two distinct elements equal.
	Logger *slog.Logger
}

// New returns an empty Cache in front of cmp. A nil cmp makes a Cache that
// can only replay recorded answers; Compare fails for unknown pairs.
func New[E comparable](cmp humansort.Comparator[E]) *Cache[E] {
	return &Cache[E]{
		cmp:     cmp,
		answers: make(map[pair[E]]humansort.Ordering),
	}
}

// ErrUnknown is returned by Compare on a Cache without a comparator when the
// pair has no recorded answer.
var ErrUnknown = xerrors.New("no recorded answer")

// Compare returns the ordering of a and b, asking the underlying comparator
// only if neither (a, b) nor (b, a) has been answered before.
//
// An Equal answer from the underlying comparator is returned but not
// recorded. An error is returned unchanged and nothing is recorded.
func (c *Cache[E]) Compare(a, b E) (humansort.Ordering, error) {
	if a == b {
		c.stats.Equal++
		return humansort.Equal, nil
	}
	if o, ok := c.Lookup(a, b); ok {
		c.stats.Hits++
		return o, nil
	}
	if c.cmp == nil {
		return humansort.Equal, xerrors.Errorf("comparing %v and %v: %w", a, b, ErrUnknown)
	}
	c.stats.Queries++
	o, err := c.cmp.Compare(a, b)
	if err != nil {
		return o, err
	}
	if o == humansort.Equal {
		if c.Logger != nil {
			c.Logger.Warn("comparator called distinct elements equal", "a", a, "b", b)
		}
		return o, nil
	}
	c.put(a, b, o)
	return o, nil
}

// Lookup returns the recorded ordering of a and b, if any, without asking
// the underlying comparator.
func (c *Cache[E]) Lookup(a, b E) (humansort.Ordering, bool) {
	if o, ok := c.answers[pair[E]{b, a}]; ok {
		return o.Reverse(), true
	}
	o, ok := c.answers[pair[E]{a, b}]
	return o, ok
}

// Set records that comparing a with b yields o. Recording an answer that is
// already known is a no-op. Set fails with ErrContradiction if a different
// answer is known, and with ErrEqual if a == b or o is Equal.
func (c *Cache[E]) Set(a, b E, o humansort.Ordering) error {
	if err := c.check(a, b, o); err != nil {
		return err
	}
	if _, ok := c.Lookup(a, b); !ok {
		c.put(a, b, o)
	}
	return nil
}

func (c *Cache[E]) check(a, b E, o humansort.Ordering) error {
	if a == b || o == humansort.Equal {
		return ErrEqual
	}
	if o != humansort.Less && o != humansort.Greater {
		return xerrors.Errorf("invalid ordering %v", o)
	}
	if known, ok := c.Lookup(a, b); ok && known != o {
		return ErrContradiction
	}
	return nil
}

func (c *Cache[E]) put(a, b E, o humansort.Ordering) {
	p := pair[E]{a, b}
	c.answers[p] = o
	c.order = append(c.order, p)
}

// Len returns the number of recorded answers.
func (c *Cache[E]) Len() int { return len(c.answers) }

// Entries returns the recorded answers in the order they were recorded.
func (c *Cache[E]) Entries() []Entry[E] {
	es := make([]Entry[E], len(c.order))
	for i, p := range c.order {
		es[i] = Entry[E]{A: p.a, B: p.b, Result: c.answers[p]}
	}
	return es
}

// Stats returns counts of how comparisons have been resolved so far.
func (c *Cache[E]) Stats() Stats { return c.stats }

// merge adds all entries of src to c. It fails without changing c if any
// entry contradicts an answer already in c.
func (c *Cache[E]) merge(src []Entry[E]) (int, error) {
	for i, e := range src {
		if err := c.check(e.A, e.B, e.Result); err != nil {
			return i, err
		}
	}
	for _, e := range src {
		if _, ok := c.Lookup(e.A, e.B); !ok {
			c.put(e.A, e.B, e.Result)
		}
	}
	return -1, nil
}
