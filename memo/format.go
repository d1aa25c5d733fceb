// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/humansort"
	"golang.org/x/xerrors"
)

// The text format holds one answer per line:
//
//	<a>|<op>|<b>
//
// where op is "<" if a sorts before b and ">" if a sorts after b. A line is
// split at its first two '|' characters, so b may itself contain '|'.
const (
	sep     = "|"
	opLess  = "<"
	opGreat = ">"
)

var (
	// ErrMissingField reports a line with fewer than three fields.
	ErrMissingField = xerrors.New("missing field")

	// ErrBadOperator reports an operator other than "<" or ">".
	ErrBadOperator = xerrors.New("invalid operator")

	// ErrUnencodable reports an answer that the text format cannot hold.
	ErrUnencodable = xerrors.New("cannot encode answer")
)

// A ParseError describes a malformed line in the text format.
type ParseError struct {
	Line  int    // 1-based line number
	Field string // "operator" or "item-b" for field errors, else empty
	Text  string // offending field text, if any
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case xerrors.Is(e.Err, ErrMissingField):
		return fmt.Sprintf("line %d: missing %s", e.Line, e.Field)
	case e.Field != "":
		return fmt.Sprintf("line %d: %v %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseLine(n int, line string) (Entry[string], error) {
	f := strings.SplitN(line, sep, 3)
	switch len(f) {
	case 1:
		return Entry[string]{}, &ParseError{Line: n, Field: "operator", Err: ErrMissingField}
	case 2:
		return Entry[string]{}, &ParseError{Line: n, Field: "item-b", Err: ErrMissingField}
	}
	e := Entry[string]{A: f[0], B: f[2]}
	switch f[1] {
	case opLess:
		e.Result = humansort.Less
	case opGreat:
		e.Result = humansort.Greater
	default:
		return Entry[string]{}, &ParseError{Line: n, Field: "operator", Text: f[1], Err: ErrBadOperator}
	}
	return e, nil
}

// Read parses answers in the text format from r and adds them to c.
//
// Read is all-or-nothing: if any line is malformed, or contradicts another
// line or an answer already in c, it returns a *ParseError and c is left
// unchanged. Lines that repeat a known answer, in either direction, are
// accepted. Blank lines are ignored.
func Read(r io.Reader, c *Cache[string]) error {
	staged := New[string](nil)
	var (
		entries []Entry[string]
		lines   []int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := parseLine(n, line)
		if err != nil {
			return err
		}
		if err := staged.Set(e.A, e.B, e.Result); err != nil {
			return &ParseError{Line: n, Err: err}
		}
		entries = append(entries, e)
		lines = append(lines, n)
	}
	if err := sc.Err(); err != nil {
		return xerrors.Errorf("reading answers: %w", err)
	}
	if i, err := c.merge(entries); err != nil {
		return &ParseError{Line: lines[i], Err: err}
	}
	return nil
}

// Write writes every answer in c to w in the text format, in the order the
// answers were recorded.
//
// An answer whose first element contains '|' is written the other way
// round. Answers that cannot be written either way, because both elements
// contain '|' or an element contains a line break, fail with ErrUnencodable.
func Write(w io.Writer, c *Cache[string]) error {
	bw := bufio.NewWriter(w)
	for _, e := range c.Entries() {
		if strings.ContainsAny(e.A, "\r\n") || strings.ContainsAny(e.B, "\r\n") {
			return xerrors.Errorf("%q, %q: %w", e.A, e.B, ErrUnencodable)
		}
		if strings.Contains(e.A, sep) {
			if strings.Contains(e.B, sep) {
				return xerrors.Errorf("%q, %q: %w", e.A, e.B, ErrUnencodable)
			}
			e = Entry[string]{A: e.B, B: e.A, Result: e.Result.Reverse()}
		}
		op := opLess
		if e.Result == humansort.Greater {
			op = opGreat
		}
		if _, err := fmt.Fprintf(bw, "%s%s%s%s%s\n", e.A, sep, op, sep, e.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadFile reads answers from the named file into c. See Read.
// If the file does not exist the error satisfies errors.Is(err, fs.ErrNotExist).
func LoadFile(name string, c *Cache[string]) error {
	f, err := os.Open(name)
	if err != nil {
		return xerrors.Errorf("loading answers: %w", err)
	}
	defer f.Close()
	if err := Read(f, c); err != nil {
		return xerrors.Errorf("%s: %w", name, err)
	}
	return nil
}

// SaveFile writes the answers in c to the named file, replacing it
// atomically.
func SaveFile(name string, c *Cache[string]) (err error) {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return xerrors.Errorf("saving answers: %w", err)
	}
	closed := false
	defer func() {
		if err != nil {
			if !closed {
				f.Close()
			}
			os.Remove(f.Name())
		}
	}()
	if err := Write(f, c); err != nil {
		return xerrors.Errorf("saving answers to %s: %w", name, err)
	}
	closed = true
	if err := f.Close(); err != nil {
		return xerrors.Errorf("saving answers to %s: %w", name, err)
	}
	if err := os.Rename(f.Name(), name); err != nil {
		return xerrors.Errorf("saving answers: %w", err)
	}
	return nil
}
