// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle asks someone, or something, which of two elements comes
// first.
//
// An Oracle answers with a Choice, never "equal": identical elements are
// filtered out before an oracle is consulted. Comparator adapts an Oracle
// for use with package golang.org/x/exp/humansort.
package oracle

import (
	"fmt"

	"golang.org/x/exp/humansort"
	"golang.org/x/xerrors"
)

// A Choice names the element that comes first.
type Choice uint8

const (
	A Choice = iota + 1 // the first element comes first
	B                   // the second element comes first
)

func (c Choice) String() string {
	switch c {
	case A:
		return "a"
	case B:
		return "b"
	}
	return fmt.Sprintf("Choice(%d)", uint8(c))
}

// An Oracle decides which of two distinct elements comes first.
// Ask may block for as long as it takes to get an answer.
type Oracle[E any] interface {
	Ask(a, b E) (Choice, error)
}

// Func adapts a function to an Oracle.
type Func[E any] func(a, b E) (Choice, error)

// Ask calls f(a, b).
func (f Func[E]) Ask(a, b E) (Choice, error) { return f(a, b) }

type comparator[E any] struct {
	o Oracle[E]
}

// Comparator returns a Comparator that asks o: A means a sorts before b.
func Comparator[E any](o Oracle[E]) humansort.Comparator[E] {
	return comparator[E]{o}
}

func (c comparator[E]) Compare(a, b E) (humansort.Ordering, error) {
	ch, err := c.o.Ask(a, b)
	if err != nil {
		return humansort.Equal, err
	}
	switch ch {
	case A:
		return humansort.Less, nil
	case B:
		return humansort.Greater, nil
	}
	return humansort.Equal, xerrors.Errorf("oracle returned %v", ch)
}

// ErrScriptExhausted is returned by a Script with no answers left.
var ErrScriptExhausted = xerrors.New("oracle script exhausted")

// A Script answers with a fixed sequence of choices, in order, and records
// the questions it was asked.
type Script[E any] struct {
	Answers []Choice
	Asked   [][2]E
}

// Ask records the question and returns the next scripted answer.
func (s *Script[E]) Ask(a, b E) (Choice, error) {
	s.Asked = append(s.Asked, [2]E{a, b})
	if len(s.Answers) == 0 {
		return 0, xerrors.Errorf("asked %v or %v: %w", a, b, ErrScriptExhausted)
	}
	c := s.Answers[0]
	s.Answers = s.Answers[1:]
	return c, nil
}
