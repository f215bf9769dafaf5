package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xkcdpass/pkg/passphrase"
)

// execute runs the CLI with a hermetic environment and returns stdout and stderr.
func execute(t *testing.T, environ map[string]string, args ...string) (string, string, error) {
	t.Helper()

	if environ == nil {
		environ = map[string]string{}
	}
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&app{environ: environ})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPresetsCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, nil, "presets")
	require.NoError(t, err)
	assert.Equal(t, passphrase.PresetNames(), lines(out))
}

func TestGenerate_PresetAndWordList(t *testing.T) {
	t.Parallel()

	words := writeFile(t, "words.txt", "tree\nfrog\n\nblue\nhorse\n")
	out, _, err := execute(t, nil, "--preset", "xkcd", "--wordlist", words, "--count", "5")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 5)
	for _, pass := range got {
		assert.Regexp(t, `^(?i:(tree|frog|blue|horse)(-(tree|frog|blue|horse)){3})$`, pass)
	}
}

func TestGenerate_SettingsFromEnvironment(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, map[string]string{
		"XKCDPASS_PRESET": "web16",
		"XKCDPASS_COUNT":  "3",
	})
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 3)
	for _, pass := range got {
		assert.Len(t, pass, 16)
	}
}

func TestGenerate_FlagsOverrideEnvironment(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, map[string]string{
		"XKCDPASS_PRESET": "web16",
		"XKCDPASS_COUNT":  "3",
	}, "-p", "xkcd", "-n", "2")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 2)
	for _, pass := range got {
		assert.Equal(t, 3, strings.Count(pass, "-"), pass)
	}
}

func TestGenerate_ConfigFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "custom.yaml", `
words:
  count: 2
  min_length: 4
  max_length: 4
  transformation: upper
separator:
  mode: single
  candidates: "."
padding_digits:
  before: 0
  after: 3
padding_symbols:
  style:
    kind: fixed
    before: 0
    after: 1
  mode: separator
  candidates: ""
`)
	words := writeFile(t, "words.txt", "tree\nfrog\n")

	out, _, err := execute(t, nil, "--config", path, "--wordlist", words)
	require.NoError(t, err)
	assert.Regexp(t, `^(TREE|FROG)\.(TREE|FROG)\.[1-9]\d{2}\.\n$`, out)
}

func TestShowCommand(t *testing.T) {
	t.Parallel()

	t.Run("named preset", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "show", "wifi")
		require.NoError(t, err)

		cfg, err := passphrase.ParseConfig([]byte(out))
		require.NoError(t, err)
		assert.Equal(t, passphrase.WiFi(), cfg)
	})

	t.Run("effective configuration", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, map[string]string{"XKCDPASS_PRESET": "ntml"}, "show")
		require.NoError(t, err)

		cfg, err := passphrase.ParseConfig([]byte(out))
		require.NoError(t, err)
		assert.Equal(t, passphrase.NTML(), cfg)
	})
}

func TestDebugLogging(t *testing.T) {
	t.Parallel()

	words := writeFile(t, "words.txt", "tree\nfrog\nblue\n")
	out, logs, err := execute(t, map[string]string{
		"XKCDPASS_LOG_LEVEL":  "debug",
		"XKCDPASS_LOG_FORMAT": "json",
	}, "-p", "web16", "-w", words)
	require.NoError(t, err)

	pass := strings.TrimSpace(out)
	assert.Contains(t, logs, `"msg":"word list loaded"`)
	assert.Contains(t, logs, `"service":"xkcdpass"`)
	assert.NotContains(t, logs, pass, "passwords must never be logged")
}

func TestLogLevelDefaults(t *testing.T) {
	t.Parallel()

	words := writeFile(t, "words.txt", "tree\nfrog\nblue\n")

	tests := []struct {
		name     string
		environ  map[string]string
		wantLogs string
	}{
		{name: "production by default", environ: map[string]string{}},
		{name: "development logs debug", environ: map[string]string{"XKCDPASS_ENV": "development"}, wantLogs: `msg="word list loaded"`},
		{name: "level overrides environment", environ: map[string]string{"XKCDPASS_ENV": "dev", "XKCDPASS_LOG_LEVEL": "warn"}},
		{name: "level lowers production default", environ: map[string]string{"XKCDPASS_LOG_LEVEL": "debug"}, wantLogs: `"msg":"word list loaded"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, logs, err := execute(t, tt.environ, "-p", "web16", "-w", words)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
			if tt.wantLogs == "" {
				assert.Empty(t, logs)
			} else {
				assert.Contains(t, logs, tt.wantLogs)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
		args    []string
		wantErr error
	}{
		{name: "unknown preset", args: []string{"-p", "nope"}, wantErr: passphrase.ErrUnknownPreset},
		{name: "zero count", args: []string{"-n", "0"}, wantErr: errInvalidCount},
		{name: "bad count in environment", environ: map[string]string{"XKCDPASS_COUNT": "lots"}},
		{name: "bad log format", environ: map[string]string{"XKCDPASS_LOG_FORMAT": "xml"}},
		{name: "bad log level", environ: map[string]string{"XKCDPASS_LOG_LEVEL": "loud"}},
		{name: "missing config file", args: []string{"-c", "/nonexistent/xkcdpass.yaml"}, wantErr: passphrase.ErrDecodeConfig},
		{name: "unexpected argument", args: []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, tt.environ, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Empty(t, out)
		})
	}
}
