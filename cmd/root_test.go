package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/archdoc/internal/model"
)

func TestParsePaths(t *testing.T) {
	t.Run("defaults to recursive current directory", func(t *testing.T) {
		assert.Equal(t, []m.Path{"./..."}, parsePaths(nil))
	})

	t.Run("passes arguments through", func(t *testing.T) {
		assert.Equal(t, []m.Path{"./a/...", "b.rs"}, parsePaths([]string{"./a/...", "b.rs"}))
	})
}

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	assert.NotNil(t, cmd.Flags().Lookup("parallel"))
	assert.NotNil(t, cmd.Flags().Lookup("exclude"))
	assert.NotNil(t, cmd.Flags().Lookup("dry-run"))
	assert.NotNil(t, cmd.Flags().Lookup("license-only"))
	assert.Equal(t, "archdoc [paths...]", cmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "run")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "version")
}

func execute(t *testing.T, args ...string) string {
	t.Helper()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())

	return buf.String()
}

func TestRunCommand_EndToEnd(t *testing.T) {
	// Arrange
	root := t.TempDir()
	path := filepath.Join(root, "domain", "volume.rs")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("pub struct Volume;\n"), 0o600))

	// Act
	out := execute(t, "run", root+"/...")

	// Assert
	assert.Contains(t, out, "Updated: "+path)
	assert.Contains(t, out, "Scanned 1 files. Updated 1 files.")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "// SPDX-License-Identifier: AGPL-3.0")
	assert.Contains(t, text, "//! # Architecture")
	assert.Contains(t, text, "//! - **Layer:** Domain Layer")
	assert.True(t, strings.HasSuffix(text, "pub struct Volume;\n"))

	// Second run is a no-op.
	out = execute(t, "run", root+"/...")
	assert.Contains(t, out, "Scanned 1 files. Updated 0 files.")
}

func TestListCommand_EndToEnd(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "lib.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main() {}\n"), 0o600))

	out := execute(t, "list", root+"/...")

	assert.Contains(t, out, path)
	assert.Contains(t, out, "update")
	assert.Contains(t, out, "1 of 1 files need updating")

	// list never writes
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", string(content))
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")

	assert.Contains(t, out, "archdoc")
	assert.Contains(t, out, version)
}
