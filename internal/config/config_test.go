// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadAndEnv(t *testing.T) {
	name := filepath.Join(t.TempDir(), "humansort.yaml")
	const file = `
state: answers.txt
normalize: nfc
log_level: debug
`
	if err := os.WriteFile(name, []byte(file), 0666); err != nil {
		t.Fatal(err)
	}
	c := Default()
	if err := c.Load(name); err != nil {
		t.Fatal(err)
	}
	env := map[string]string{
		"HUMANSORT_LOG_LEVEL":  "error",
		"HUMANSORT_LOG_FORMAT": "",
	}
	c.FromEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	want := Config{
		State:     "answers.txt",
		Normalize: "nfc",
		LogFormat: "text",
		LogLevel:  "error",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
	if err := c.Validate(); err != nil {
		t.Error(err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	c := Default()
	if err := c.Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("colour: blue\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if err := c.Load(bad); err == nil {
		t.Error("unknown key accepted")
	}
	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, nil, 0666); err != nil {
		t.Fatal(err)
	}
	if err := c.Load(empty); err != nil {
		t.Errorf("empty file: %v", err)
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"bad normalize", func(c *Config) { c.Normalize = "nfz" }, false},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "shout" }, false},
		{"output is input", func(c *Config) { c.Input, c.Output = "x.txt", "x.txt" }, false},
	} {
		c := Default()
		test.edit(&c)
		if err := c.Validate(); (err == nil) != test.ok {
			t.Errorf("%s: Validate() = %v", test.name, err)
		}
	}
}
