// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

// ErrNoAnswer is returned by Console.Ask when its input ends before a
// valid answer is read.
var ErrNoAnswer = xerrors.New("input ended before an answer")

const hint = `type a or b, or "save FILE" to write the answers so far to FILE.`

// A Console asks a person at a terminal. For each question it writes
//
//	a: <a> b: <b>
//
// and reads lines until one is "a" or "b". A line "save FILE" calls Save
// with FILE and then repeats the question. Other lines print a hint.
type Console[E any] struct {
	in  *bufio.Reader
	out io.Writer

	// Save, if non-nil, is called for "save FILE" commands.
	Save func(name string) error

	// Logger, if non-nil, records each answer at debug level.
	Logger *slog.Logger
}

// NewConsole returns a Console reading answers from in and writing
// questions to out. The same in may be used to read other input before and
// after, since the Console never reads past the end of an answer line.
func NewConsole[E any](in *bufio.Reader, out io.Writer) *Console[E] {
	return &Console[E]{in: in, out: out}
}

// Ask prints the question and reads lines until one holds an answer.
func (c *Console[E]) Ask(a, b E) (Choice, error) {
	for {
		if _, err := fmt.Fprintf(c.out, "a: %v b: %v\n", a, b); err != nil {
			return 0, err
		}
		ch, err := c.answer()
		if err != nil {
			return 0, err
		}
		if ch != 0 {
			if c.Logger != nil {
				c.Logger.Debug("answered", "a", a, "b", b, "choice", ch)
			}
			return ch, nil
		}
	}
}

// answer reads lines until it gets a choice, or a save command has been
// handled, in which case it returns 0 so the question is asked again.
func (c *Console[E]) answer() (Choice, error) {
	for {
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return 0, ErrNoAnswer
			}
			return 0, xerrors.Errorf("reading answer: %w", err)
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "a":
			return A, nil
		case line == "b":
			return B, nil
		case line == "save" || strings.HasPrefix(line, "save "):
			c.save(strings.TrimSpace(strings.TrimPrefix(line, "save")))
			return 0, nil
		}
		fmt.Fprintln(c.out, hint)
		if err == io.EOF {
			return 0, ErrNoAnswer
		}
	}
}

func (c *Console[E]) save(name string) {
	switch {
	case name == "":
		fmt.Fprintln(c.out, "usage: save FILE")
	case c.Save == nil:
		fmt.Fprintln(c.out, "saving is not available")
	default:
		if err := c.Save(name); err != nil {
			fmt.Fprintf(c.out, "save failed: %v\n", err)
			if c.Logger != nil {
				c.Logger.Error("save failed", "file", name, "err", err)
			}
			return
		}
		fmt.Fprintf(c.out, "saved answers to %s\n", name)
		if c.Logger != nil {
			c.Logger.Info("saved answers", "file", name)
		}
	}
}
