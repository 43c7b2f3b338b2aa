package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_RequiresPipelinePath(t *testing.T) {
	_, err := NewConfig(Config{})
	require.ErrorContains(t, err, "PipelinePath")
}

func TestNewConfig_KeepsValues(t *testing.T) {
	cfg, err := NewConfig(Config{
		PipelinePath: "ci.hcl",
		EnvOverlay:   map[string]string{"CI": "true"},
		LogFormat:    "json",
		LogLevel:     "debug",
		Quiet:        true,
	})

	require.NoError(t, err)
	require.Equal(t, "ci.hcl", cfg.PipelinePath)
	require.Equal(t, "true", cfg.EnvOverlay["CI"])
	require.Equal(t, "json", cfg.LogFormat)
	require.True(t, cfg.Quiet)
}
