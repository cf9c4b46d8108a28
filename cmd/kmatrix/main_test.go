// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pagedewarp/options"
)

// quietLogger discards log output during tests.
func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// TestRun_Defaults prints K for the default focal length.
func TestRun_Defaults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out, quietLogger()))
	require.Equal(t, "[1.2, 0, 0]\n[0, 1.2, 0]\n[0, 0, 1]\n", out.String())
}

// TestRun_FlagOverridesFile checks the resolution order file < flag.
func TestRun_FlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("FOCAL_LENGTH: 500\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-c", path, "-v"}, &out, quietLogger()))
	require.Equal(t, "[500, 0, 0]\n[0, 500, 0]\n[0, 0, 1]\n", out.String())

	out.Reset()
	require.NoError(t, run([]string{"--config", path, "--focal-length", "1000"}, &out, quietLogger()))
	require.Equal(t, "[1000, 0, 0]\n[0, 1000, 0]\n[0, 0, 1]\n", out.String())
}

// TestRun_YAMLFormat emits a decodable K document.
func TestRun_YAMLFormat(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-f", "1000", "--format", "yaml"}, &out, quietLogger()))

	var doc map[string][][]float32
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Equal(t, [][]float32{{1000, 0, 0}, {0, 1000, 0}, {0, 0, 1}}, doc["K"])
}

// TestRun_Errors covers invalid config, unknown format and bad flags.
func TestRun_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("FOCAL_LENGTH: abc\n"), 0o600))

	err := run([]string{"-c", path}, io.Discard, quietLogger())
	require.ErrorIs(t, err, options.ErrInvalidConfiguration)

	err = run([]string{"--format", "xml"}, io.Discard, quietLogger())
	require.ErrorIs(t, err, errUnknownFormat)

	err = run([]string{"--focal-length", "wide"}, io.Discard, quietLogger())
	require.Error(t, err)
}
