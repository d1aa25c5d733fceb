// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/humansort/internal/config"
	"golang.org/x/tools/txtar"
	"golang.org/x/xerrors"
)

func noEnv(string) (string, bool) { return "", false }

// TestScripts runs each testdata archive. The archive comment holds the
// command-line arguments. The files are:
//
//	stdin       input to the command
//	stdout      expected output
//	err         expected error text, if the command should fail
//	NAME.want   expected contents of $WORK/NAME afterwards
//	NAME        written to $WORK/NAME before running
//
// $WORK is replaced by a per-test temporary directory everywhere.
func TestScripts(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			require.NoError(t, err)

			work := t.TempDir()
			expand := func(s string) string { return strings.ReplaceAll(s, "$WORK", work) }
			var stdin, wantStdout, wantErr string
			wantFiles := map[string]string{}
			for _, f := range ar.Files {
				data := expand(string(f.Data))
				switch {
				case f.Name == "stdin":
					stdin = data
				case f.Name == "stdout":
					wantStdout = data
				case f.Name == "err":
					wantErr = strings.TrimSpace(data)
				case strings.HasSuffix(f.Name, ".want"):
					wantFiles[strings.TrimSuffix(f.Name, ".want")] = data
				default:
					require.NoError(t, os.WriteFile(filepath.Join(work, f.Name), []byte(data), 0666))
				}
			}

			var stdout, stderr bytes.Buffer
			cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr, noEnv)
			cmd.SetArgs(strings.Fields(expand(string(ar.Comment))))
			err = cmd.Execute()
			if wantErr == "" {
				require.NoError(t, err, "stderr:\n%s", stderr.String())
			} else {
				require.ErrorContains(t, err, wantErr)
			}
			require.Equal(t, wantStdout, stdout.String())
			for name, want := range wantFiles {
				got, err := os.ReadFile(filepath.Join(work, name))
				require.NoError(t, err)
				require.Equal(t, want, string(got), name)
			}
		})
	}
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--no-such-flag"},
		{"extra"},
		{"--log-format", "xml"},
		{"--normalize", "nfz"},
	} {
		cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, noEnv)
		cmd.SetArgs(args)
		err := cmd.Execute()
		var ue usageError
		require.Truef(t, xerrors.As(err, &ue), "%q: got %v, want a usage error", args, err)
	}
}

func TestResolveConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "humansort.yaml")
	require.NoError(t, os.WriteFile(file, []byte("state: from-file\nlog_level: debug\nlog_format: json\n"), 0666))
	env := func(k string) (string, bool) {
		switch k {
		case config.Env.LogLevel:
			return "error", true
		case config.Env.LogFormat:
			return "logfmt", true
		}
		return "", false
	}

	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, env)
	cmd.RunE = nil
	cmd.Run = func(c *cobra.Command, _ []string) {}
	cmd.SetArgs([]string{"--config", file, "--log-format", "zap"})
	require.NoError(t, cmd.Execute())

	configFile, err := cmd.Flags().GetString("config")
	require.NoError(t, err)
	flags := config.Default()
	flags.LogFormat, err = cmd.Flags().GetString("log-format")
	require.NoError(t, err)
	got, err := resolveConfig(cmd.Flags(), flags, configFile, env)
	require.NoError(t, err)

	want := config.Default()
	want.State = "from-file" // file
	want.LogLevel = "error"  // environment over file
	want.LogFormat = "zap"   // flag over environment
	require.Equal(t, want, got)
}
