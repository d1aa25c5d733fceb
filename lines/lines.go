// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines reads and writes lists of items, one item per line.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/mmap"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/xerrors"
)

// ErrCount reports a missing or malformed item count.
var ErrCount = xerrors.New("bad item count")

// maxLine bounds the length of a single item.
const maxLine = 1 << 20

// ReadCounted reads a count-prefixed list: a line holding the number of
// items n, then n lines with one item each. Items are trimmed of
// surrounding space; blank items are kept.
//
// ReadCounted consumes exactly n+1 lines from r, so r can be handed on to
// read whatever follows the list.
func ReadCounted(r *bufio.Reader) ([]string, error) {
	first, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || first == "") {
		if err == io.EOF {
			return nil, xerrors.Errorf("reading item count: %w", ErrCount)
		}
		return nil, xerrors.Errorf("reading item count: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil || n < 0 {
		return nil, xerrors.Errorf("%q: %w", strings.TrimSpace(first), ErrCount)
	}
	items := make([]string, 0, n)
	for len(items) < n {
		line, err := r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return nil, xerrors.Errorf("read %d of %d items: %w", len(items), n, io.ErrUnexpectedEOF)
			}
			return nil, xerrors.Errorf("reading item %d: %w", len(items)+1, err)
		}
		items = append(items, strings.TrimSpace(line))
	}
	return items, nil
}

// Read reads one item per line from r. Items are trimmed of surrounding
// space and blank lines are skipped.
func Read(r io.Reader) ([]string, error) {
	var items []string
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLine)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			items = append(items, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, xerrors.Errorf("reading items: %w", err)
	}
	return items, nil
}

// ReadFile reads items from the named file. See Read.
func ReadFile(name string) ([]string, error) {
	ra, err := mmap.Open(name)
	if err != nil {
		return nil, xerrors.Errorf("reading items: %w", err)
	}
	defer ra.Close()
	items, err := Read(io.NewSectionReader(ra, 0, int64(ra.Len())))
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", name, err)
	}
	return items, nil
}

// Normalize rewrites each item in the Unicode normalization form f, so that
// items that look the same compare as identical.
func Normalize(items []string, f norm.Form) {
	for i, s := range items {
		items[i] = f.String(s)
	}
}

// ParseForm returns the normalization form named by s: "nfc", "nfd",
// "nfkc" or "nfkd". The boolean is false for "none" or "".
func ParseForm(s string) (norm.Form, bool, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return 0, false, nil
	case "nfc":
		return norm.NFC, true, nil
	case "nfd":
		return norm.NFD, true, nil
	case "nfkc":
		return norm.NFKC, true, nil
	case "nfkd":
		return norm.NFKD, true, nil
	}
	return 0, false, xerrors.Errorf("unknown normalization form %q", s)
}

// Write writes items to w, one per line.
func Write(w io.Writer, items []string) error {
	bw := bufio.NewWriter(w)
	for _, s := range items {
		bw.WriteString(s)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes items to the named file, one per line.
func WriteFile(name string, items []string) error {
	f, err := os.Create(name)
	if err != nil {
		return xerrors.Errorf("writing items: %w", err)
	}
	if err := Write(f, items); err != nil {
		f.Close()
		return xerrors.Errorf("writing items to %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return xerrors.Errorf("writing items to %s: %w", name, err)
	}
	return nil
}

// Print writes a header followed by items, one per line, for reading at a
// terminal.
func Print(w io.Writer, items []string) error {
	if _, err := fmt.Fprint(w, "The final order is:\n\n"); err != nil {
		return err
	}
	return Write(w, items)
}
