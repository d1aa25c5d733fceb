// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package humansort

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// An Ordering is the result of comparing a with b.
type Ordering int

const (
	Less    Ordering = -1 // a sorts before b
	Equal   Ordering = 0
	Greater Ordering = 1 // a sorts after b
)

// Reverse returns the result of comparing b with a.
func (o Ordering) Reverse() Ordering { return -o }

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// A Comparator decides the relative order of two elements.
//
// Compare must describe a strict weak ordering for the duration of a sort.
// A non-nil error stops the sort in progress.
type Comparator[E any] interface {
	Compare(a, b E) (Ordering, error)
}

// CompareFunc adapts an infallible function to a Comparator.
type CompareFunc[E any] func(a, b E) Ordering

// Compare returns f(a, b).
func (f CompareFunc[E]) Compare(a, b E) (Ordering, error) { return f(a, b), nil }

// Natural returns a Comparator using the < operator.
func Natural[E constraints.Ordered]() Comparator[E] {
	return CompareFunc[E](func(a, b E) Ordering {
		switch {
		case a < b:
			return Less
		case b < a:
			return Greater
		}
		return Equal
	})
}

type reversed[E any] struct{ c Comparator[E] }

func (r reversed[E]) Compare(a, b E) (Ordering, error) {
	o, err := r.c.Compare(a, b)
	return o.Reverse(), err
}

// Reverse returns a Comparator ordering elements the opposite way to c.
func Reverse[E any](c Comparator[E]) Comparator[E] {
	if r, ok := c.(reversed[E]); ok {
		return r.c
	}
	return reversed[E]{c}
}
