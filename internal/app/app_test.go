package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pipegate/internal/config"
)

// stubLoader hands back a pre-built pipeline, standing in for a format
// front end.
type stubLoader struct {
	pipeline *config.Pipeline
}

func (s *stubLoader) Load(context.Context, string) (*config.Pipeline, error) {
	return s.pipeline, nil
}

func TestNewApp_CLIOverlayWinsOverFileOverlay(t *testing.T) {
	loaded := &config.Pipeline{
		Env:   map[string]string{"SHARED": "file", "FROM_FILE": "file"},
		Steps: []*config.Step{{Name: "test", Command: "true"}},
	}
	cfg, err := NewConfig(Config{
		PipelinePath: "ci.hcl",
		EnvOverlay:   map[string]string{"SHARED": "cli", "FROM_CLI": "cli"},
		Quiet:        true,
	})
	require.NoError(t, err)

	var out bytes.Buffer
	a, err := NewApp(context.Background(), &out, cfg, &stubLoader{pipeline: loaded})
	require.NoError(t, err)

	require.Equal(t, map[string]string{
		"SHARED":    "cli",
		"FROM_FILE": "file",
		"FROM_CLI":  "cli",
	}, a.Pipeline().Env)
}

func TestNewApp_CLIOverlayDoesNotMutateLoadedPipeline(t *testing.T) {
	loaded := &config.Pipeline{
		Env:   map[string]string{"SHARED": "file"},
		Steps: []*config.Step{{Name: "test", Command: "true"}},
	}
	cfg, err := NewConfig(Config{
		PipelinePath: "ci.hcl",
		EnvOverlay:   map[string]string{"SHARED": "cli"},
		Quiet:        true,
	})
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = NewApp(context.Background(), &out, cfg, &stubLoader{pipeline: loaded})
	require.NoError(t, err)

	// A pipeline is immutable once loaded; the merge happens on a copy.
	require.Equal(t, map[string]string{"SHARED": "file"}, loaded.Env)
}
