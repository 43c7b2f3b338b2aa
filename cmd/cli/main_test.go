package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pipegate/internal/cli"
)

func TestRun_ConfigErrorGetsUsageExitCode(t *testing.T) {
	t.Parallel()

	// An HCL syntax error must surface as a configuration error (exit 2),
	// never reach the executor.
	invalidHCL := `
		step "test" {
			command = "true"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-quiet", filePath})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "failed to load pipeline")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_PassingPipeline(t *testing.T) {
	t.Parallel()

	hclSrc := `
		step "test" {
			command = "true"
		}
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(hclSrc), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-quiet", "-log-level", "error", filePath})

	require.NoError(t, err)
	require.Contains(t, out.String(), "steps passed")
}

func TestRun_FailingPipeline(t *testing.T) {
	t.Parallel()

	hclSrc := `
		step "test" {
			command = "false"
		}
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(hclSrc), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-quiet", "-log-level", "error", filePath})

	require.Error(t, err)
	require.Contains(t, err.Error(), `pipeline failed at step "test"`)
}
