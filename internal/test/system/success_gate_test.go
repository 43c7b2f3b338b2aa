package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pipegate/internal/testutil"
)

// Test for: a pipeline whose every step exits zero reports overall success
// with one result per step, in declared order.
func TestSystem_AllGatesPass(t *testing.T) {
	result := testutil.RunPipelineTest(t, map[string]string{"ci.hcl": `
		step "test" {
			command = "true"
		}

		step "fmt-check" {
			command = "true"
		}

		step "lint" {
			command = "true"
		}
	`})

	require.NoError(t, result.Err)
	require.NotNil(t, result.Report)
	require.True(t, result.Report.Success)
	require.Len(t, result.Report.Results, 3)
	require.Equal(t, "test", result.Report.Results[0].Name)
	require.Equal(t, "fmt-check", result.Report.Results[1].Name)
	require.Equal(t, "lint", result.Report.Results[2].Name)
	require.Contains(t, result.Output, "Pipeline finished successfully")
}
