package executor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeEnviron_LaterOverlaysWin(t *testing.T) {
	base := []string{"KEY=base", "KEEP=yes"}
	env := mergeEnviron(base,
		map[string]string{"KEY": "pipeline", "ADDED": "1"},
		map[string]string{"KEY": "step"},
	)

	require.Contains(t, env, "KEY=step")
	require.Contains(t, env, "KEEP=yes")
	require.Contains(t, env, "ADDED=1")
	require.NotContains(t, env, "KEY=base")
	require.NotContains(t, env, "KEY=pipeline")
}

func TestMergeEnviron_NoOverlays(t *testing.T) {
	env := mergeEnviron([]string{"B=2", "A=1"})
	require.Equal(t, []string{"A=1", "B=2"}, env)
}

func TestMergeEnviron_SkipsMalformedBaseEntries(t *testing.T) {
	env := mergeEnviron([]string{"NOEQUALS", "OK=1"})
	require.Equal(t, []string{"OK=1"}, env)
}

func TestMergeEnviron_ValueWithEquals(t *testing.T) {
	env := mergeEnviron([]string{"FLAGS=-a=b -c=d"}, map[string]string{"X": "y=z"})
	require.Contains(t, env, "FLAGS=-a=b -c=d")
	require.Contains(t, env, "X=y=z")
}
