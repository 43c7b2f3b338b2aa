package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pipegate/internal/app"
	"github.com/vk/pipegate/internal/executor"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RunResult holds the outcomes of a pipeline test run.
type RunResult struct {
	Output string
	Report *executor.Report
	App    *app.App
	Err    error
}

// RunPipelineTest provides a standardized harness: it writes the given
// pipeline files into a temporary directory, builds an app against them, and
// runs it. A single file is loaded directly; multiple files are loaded as a
// directory. Mirroring is off by default so tests see captured streams only.
func RunPipelineTest(t *testing.T, files map[string]string, mutate ...func(*app.Config)) *RunResult {
	t.Helper()

	tmpDir := t.TempDir()
	var lastPath string
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
		lastPath = filePath
	}

	pipelinePath := tmpDir
	if len(files) == 1 {
		pipelinePath = lastPath
	}

	cfg, err := app.NewConfig(app.Config{
		PipelinePath: pipelinePath,
		LogLevel:     "debug",
		LogFormat:    "text",
		Quiet:        true,
	})
	require.NoError(t, err)
	for _, m := range mutate {
		m(cfg)
	}

	buf := &SafeBuffer{}
	ctx := context.Background()

	testApp, err := app.NewApp(ctx, buf, cfg, app.LoaderFor(cfg.PipelinePath))
	if err != nil {
		return &RunResult{Output: buf.String(), Err: err}
	}

	runErr := testApp.Run(ctx)
	return &RunResult{
		Output: buf.String(),
		Report: testApp.Report(),
		App:    testApp,
		Err:    runErr,
	}
}
