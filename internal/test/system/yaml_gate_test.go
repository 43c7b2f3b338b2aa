package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pipegate/internal/testutil"
)

// Test for: a YAML pipeline behaves identically to its HCL equivalent.
func TestSystem_YAMLPipeline(t *testing.T) {
	result := testutil.RunPipelineTest(t, map[string]string{"ci.yml": `
env:
  KEY: "A"
steps:
  - name: show
    command: sh
    args: ["-c", "printf '%s' \"$KEY\""]
    env:
      KEY: "B"
  - name: lint
    command: "true"
`})

	require.NoError(t, result.Err)
	require.True(t, result.Report.Success)
	require.Len(t, result.Report.Results, 2)
	require.Equal(t, "show", result.Report.Results[0].Name)
	require.Equal(t, "B", string(result.Report.Results[0].Stdout))
}

// Test for: a failing YAML pipeline stops at the first failure just like HCL.
func TestSystem_YAMLPipelineFailure(t *testing.T) {
	result := testutil.RunPipelineTest(t, map[string]string{"ci.yml": `
steps:
  - name: test
    command: "false"
  - name: lint
    command: "true"
`})

	require.Error(t, result.Err)
	require.False(t, result.Report.Success)
	require.Equal(t, "test", result.Report.FirstFailed)
	require.Len(t, result.Report.Results, 1)
}
