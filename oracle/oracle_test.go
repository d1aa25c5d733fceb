// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"bufio"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/humansort"
	"golang.org/x/xerrors"
)

func TestConsole(t *testing.T) {
	for _, test := range []struct {
		name    string
		in      string
		want    Choice
		wantErr error
		out     string
		saved   []string
	}{
		{
			name: "a",
			in:   "a\n",
			want: A,
			out:  "a: x b: y\n",
		},
		{
			name: "b without newline",
			in:   "  b ",
			want: B,
			out:  "a: x b: y\n",
		},
		{
			name: "invalid then valid",
			in:   "c\n\nb\n",
			want: B,
			out:  "a: x b: y\n" + hint + "\n" + hint + "\n",
		},
		{
			name:  "save repeats the question",
			in:    "save state.txt\na\n",
			want:  A,
			out:   "a: x b: y\nsaved answers to state.txt\na: x b: y\n",
			saved: []string{"state.txt"},
		},
		{
			name: "save without a name",
			in:   "save\nb\n",
			want: B,
			out:  "a: x b: y\nusage: save FILE\na: x b: y\n",
		},
		{
			name:    "end of input",
			in:      "",
			wantErr: ErrNoAnswer,
			out:     "a: x b: y\n",
		},
		{
			name:    "end of input after junk",
			in:      "maybe",
			wantErr: ErrNoAnswer,
			out:     "a: x b: y\n" + hint + "\n",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			var out strings.Builder
			var saved []string
			c := NewConsole[string](bufio.NewReader(strings.NewReader(test.in)), &out)
			c.Save = func(name string) error {
				saved = append(saved, name)
				return nil
			}
			got, err := c.Ask("x", "y")
			if !xerrors.Is(err, test.wantErr) || (err == nil) != (test.wantErr == nil) {
				t.Fatalf("Ask error = %v, want %v", err, test.wantErr)
			}
			if got != test.want {
				t.Errorf("Ask = %v, want %v", got, test.want)
			}
			if diff := cmp.Diff(test.out, out.String()); diff != "" {
				t.Errorf("output (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.saved, saved); diff != "" {
				t.Errorf("saved (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestConsoleSaveFailure(t *testing.T) {
	var out strings.Builder
	c := NewConsole[string](bufio.NewReader(strings.NewReader("save /nope\na\n")), &out)
	c.Save = func(string) error { return xerrors.New("disk full") }
	if got, err := c.Ask("x", "y"); err != nil || got != A {
		t.Fatalf("Ask = %v, %v; want a", got, err)
	}
	want := "a: x b: y\nsave failed: disk full\na: x b: y\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output (-want, +got):\n%s", diff)
	}
}

// The console must leave later lines for the next reader of the stream.
func TestConsoleSharedReader(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("b\na\nrest\n"))
	c := NewConsole[int](r, &strings.Builder{})
	for _, want := range []Choice{B, A} {
		if got, err := c.Ask(1, 2); err != nil || got != want {
			t.Fatalf("Ask = %v, %v; want %v", got, err, want)
		}
	}
	rest, _ := r.ReadString('\n')
	if rest != "rest\n" {
		t.Errorf("remaining input = %q", rest)
	}
}

func TestComparator(t *testing.T) {
	s := &Script[string]{Answers: []Choice{A, B}}
	c := Comparator[string](s)
	if o, err := c.Compare("x", "y"); err != nil || o != humansort.Less {
		t.Errorf("A: got %v, %v; want Less", o, err)
	}
	if o, err := c.Compare("x", "y"); err != nil || o != humansort.Greater {
		t.Errorf("B: got %v, %v; want Greater", o, err)
	}
	if _, err := c.Compare("x", "y"); !xerrors.Is(err, ErrScriptExhausted) {
		t.Errorf("got %v, want %v", err, ErrScriptExhausted)
	}
	bad := Comparator[string](Func[string](func(a, b string) (Choice, error) { return 7, nil }))
	if _, err := bad.Compare("x", "y"); err == nil {
		t.Errorf("invalid choice accepted")
	}
}

// TestSortWithPreferences sorts by asking an oracle that prefers shorter
// words, the way a person ranking a list would.
func TestSortWithPreferences(t *testing.T) {
	items := []string{"elephant", "cat", "horse", "ox", "zebra"}
	prefer := Func[string](func(a, b string) (Choice, error) {
		if len(a) < len(b) || (len(a) == len(b) && a < b) {
			return A, nil
		}
		return B, nil
	})
	if _, err := humansort.Sort(items, Comparator[string](prefer)); err != nil {
		t.Fatal(err)
	}
	want := []string{"ox", "cat", "horse", "zebra", "elephant"}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
