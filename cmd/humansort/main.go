// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The humansort command sorts a list by asking which of two items comes
// first, as few times as it can.
//
// By default the list is read from stdin as a count followed by that many
// lines; the answers follow on the same stream. For each question type "a"
// or "b". Typing "save FILE" writes every answer given so far to FILE
// without answering the question.
//
// With --state FILE, answers are loaded from FILE when it exists and written
// back when the command exits, even if the input ended early, so a long
// session can be resumed later.
//
// Example usage:
//
//	humansort -i films.txt -s films.answers -o ranked.txt
//
//	printf '3\nred\ngreen\nblue\n' | humansort
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/humansort/internal/config"
	"golang.org/x/exp/humansort/internal/logging"
	"golang.org/x/xerrors"
)

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr, os.LookupEnv)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "humansort: %v\n", err)
		var ue usageError
		if xerrors.As(err, &ue) {
			fmt.Fprint(os.Stderr, cmd.UsageString())
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		flags      = config.Default()
		configFile string
	)
	cmd := &cobra.Command{
		Use:   "humansort",
		Short: "sort a list by answering a-or-b questions",
		Long: `Sort a list by answering a-or-b questions.

The list is read from --input, or from stdin as a count followed by that
many lines. For each question type "a" or "b" to pick the item that comes
first, or "save FILE" to write the answers so far to FILE.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{xerrors.Errorf("unexpected arguments %q", args)}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), flags, configFile, lookupEnv)
			if err != nil {
				return err
			}
			return run(cfg, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := cmd.Flags()
	f.StringVarP(&flags.Input, "input", "i", flags.Input, "read items one per line from `FILE` (default: count-prefixed list on stdin)")
	f.StringVarP(&flags.Output, "output", "o", flags.Output, "write the sorted items to `FILE` (default: print them)")
	f.StringVarP(&flags.State, "state", "s", flags.State, "load answers from `FILE` if it exists and save them there on exit")
	f.StringVar(&flags.Normalize, "normalize", flags.Normalize, "unicode normalization of items: none, nfc, nfd, nfkc, nfkd")
	f.StringVar(&configFile, "config", "", "read default settings from the YAML `FILE`")
	f.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "log format: "+strings.Join(logging.Formats, ", "))
	f.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "minimum log level: debug, info, warn, error")
	return cmd
}

// resolveConfig layers the config file, the environment and the flags that
// were set explicitly, in that order, over the defaults.
func resolveConfig(fs *pflag.FlagSet, flags config.Config, configFile string, lookupEnv func(string) (string, bool)) (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		if err := cfg.Load(configFile); err != nil {
			return cfg, err
		}
	}
	cfg.FromEnv(lookupEnv)
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = flags.Input
		case "output":
			cfg.Output = flags.Output
		case "state":
			cfg.State = flags.State
		case "normalize":
			cfg.Normalize = flags.Normalize
		case "log-format":
			cfg.LogFormat = flags.LogFormat
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return cfg, usageError{err}
	}
	return cfg, nil
}
