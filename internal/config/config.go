// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of the humansort command.
//
// Settings come from, in increasing order of precedence: built-in defaults,
// a YAML file, HUMANSORT_* environment variables, and command-line flags.
// Flags are applied by the command itself.
package config

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/exp/humansort/internal/logging"
	"golang.org/x/exp/humansort/lines"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Config is the full set of command settings.
type Config struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	State     string `yaml:"state"`
	Normalize string `yaml:"normalize"`
	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Normalize: "none",
		LogFormat: "text",
		LogLevel:  "warn",
	}
}

// Load overlays the YAML file name onto c. Unknown keys are an error.
func (c *Config) Load(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return xerrors.Errorf("loading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return xerrors.Errorf("%s: %w", name, err)
	}
	return nil
}

// Env names the environment variables read by FromEnv.
var Env = struct {
	State, LogFormat, LogLevel string
}{
	State:     "HUMANSORT_STATE",
	LogFormat: "HUMANSORT_LOG_FORMAT",
	LogLevel:  "HUMANSORT_LOG_LEVEL",
}

// FromEnv overlays set, non-empty environment variables onto c. lookup is
// usually os.LookupEnv.
func (c *Config) FromEnv(lookup func(string) (string, bool)) {
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{Env.State, &c.State},
		{Env.LogFormat, &c.LogFormat},
		{Env.LogLevel, &c.LogLevel},
	} {
		if s, ok := lookup(v.name); ok && s != "" {
			*v.dst = s
		}
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, _, err := lines.ParseForm(c.Normalize); err != nil {
		return err
	}
	if c.LogFormat != "" && !slices.Contains(logging.Formats, c.LogFormat) {
		return xerrors.Errorf("unknown log format %q", c.LogFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Output != "" && c.Output == c.Input {
		return xerrors.Errorf("output %s would overwrite the input", c.Output)
	}
	return nil
}
