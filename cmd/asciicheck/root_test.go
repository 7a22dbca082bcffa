package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asciikit/pkg/logger"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRoot_Stdin(t *testing.T) {
	t.Run("accepts printable input", func(t *testing.T) {
		stdout, _, err := run(t, "hello\nworld\r\n")
		require.NoError(t, err)
		assert.Equal(t, "2 lines checked, 0 rejected\n", stdout)
	})

	t.Run("rejects control and non-ASCII lines", func(t *testing.T) {
		stdout, stderr, err := run(t, "ok\nfoo\tbar\nfoo€bar\n", "--log-format", "json")
		require.ErrorIs(t, err, errInvalidInput)
		assert.Equal(t, "3 lines checked, 2 rejected\n", stdout)

		var entries []map[string]any
		for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
			var entry map[string]any
			if json.Unmarshal([]byte(line), &entry) == nil {
				entries = append(entries, entry)
			}
		}
		require.Len(t, entries, 2)

		assert.Equal(t, "<stdin>", entries[0]["source"])
		assert.Equal(t, float64(2), entries[0]["line"])
		diag := entries[0]["diagnostic"].(map[string]any)
		assert.Equal(t, "control_character", diag["kind"])
		assert.Equal(t, float64(4), diag["position"])

		diag = entries[1]["diagnostic"].(map[string]any)
		assert.Equal(t, "non_ascii", diag["kind"])
		assert.Equal(t, "EURO SIGN", diag["char"].(map[string]any)["name"])
	})

	t.Run("ascii mode accepts control characters", func(t *testing.T) {
		stdout, _, err := run(t, "foo\tbar\n", "--mode", "ascii")
		require.NoError(t, err)
		assert.Equal(t, "1 lines checked, 0 rejected\n", stdout)
	})

	t.Run("max errors stops the scan", func(t *testing.T) {
		stdout, _, err := run(t, "\x01\n\x02\n\x03\n", "--max-errors", "2")
		require.ErrorIs(t, err, errInvalidInput)
		assert.Equal(t, "2 lines checked, 2 rejected\n", stdout)
	})
}

func TestRoot_Files(t *testing.T) {
	good := writeFile(t, "good.txt", "alpha\nbeta\n")
	bad := writeFile(t, "bad.txt", "aeioü\n")

	t.Run("all files clean", func(t *testing.T) {
		stdout, _, err := run(t, "", good)
		require.NoError(t, err)
		assert.Equal(t, "2 lines checked, 0 rejected\n", stdout)
	})

	t.Run("reports source file", func(t *testing.T) {
		stdout, stderr, err := run(t, "", good, bad)
		require.ErrorIs(t, err, errInvalidInput)
		assert.Equal(t, "3 lines checked, 1 rejected\n", stdout)
		assert.Contains(t, stderr, "source="+bad)
		assert.Contains(t, stderr, "U+00FC")
	})

	t.Run("missing file", func(t *testing.T) {
		_, stderr, err := run(t, "", filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, stderr, "scan failed")
	})
}

func TestRoot_Config(t *testing.T) {
	t.Run("mode from environment", func(t *testing.T) {
		t.Setenv("ASCIICHECK_MODE", "ascii")
		_, _, err := run(t, "a\tb\n")
		assert.NoError(t, err)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		t.Setenv("ASCIICHECK_MODE", "ascii")
		_, _, err := run(t, "a\tb\n", "--mode", "printable")
		assert.ErrorIs(t, err, errInvalidInput)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, _, err := run(t, "", "--mode", "latin1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid mode")
	})

	t.Run("invalid log format", func(t *testing.T) {
		t.Setenv("ASCIICHECK_LOG_FORMAT", "xml")
		_, _, err := run(t, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log format")
	})

	t.Run("invalid log level", func(t *testing.T) {
		stdout, _, err := run(t, "ok\n\x01\n", "--log-level", "verbose")
		require.ErrorIs(t, err, logger.ErrInvalidLevel)
		assert.Empty(t, stdout)
	})

	t.Run("log level from environment", func(t *testing.T) {
		t.Setenv("ASCIICHECK_LOG_LEVEL", "debug")
		_, stderr, err := run(t, "ok\n")
		require.NoError(t, err)
		assert.Contains(t, stderr, "line accepted")
	})

	t.Run("malformed environment value", func(t *testing.T) {
		t.Setenv("ASCIICHECK_MAX_ERRORS", "lots")
		_, _, err := run(t, "")
		assert.Error(t, err)
	})
}
