package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcconnects/n8nscan/internal/types"
)

// The JSON key names of AnalysisRecord are consumed by downstream
// tooling; renaming a field must not silently change the wire format.
func TestAnalysisRecordJSONKeys(t *testing.T) {
	rec := types.AnalysisRecord{
		WorkflowPath: "wf.json",
		RadarFindings: []types.Finding{
			{Tool: types.ToolAgenticRadar, RuleID: "prompt_injection"},
		},
		SemgrepFindings: []types.Finding{
			{Tool: types.ToolSemgrep, RuleID: "n8n-sqli", Line: 3},
		},
		TotalFindings: 2,
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{
		"workflow_path", "metadata",
		"agentic_radar_findings", "semgrep_findings",
		"total_findings", "execution_time", "timestamp",
	} {
		require.Contains(t, m, key)
	}
}

func TestFindingOmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(types.Finding{
		Tool:     types.ToolSemgrep,
		RuleID:   "n8n-sqli",
		Severity: "ERROR",
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	require.NotContains(t, m, "path")
	require.NotContains(t, m, "line")
	require.NotContains(t, m, "code")
	require.NotContains(t, m, "metadata")
}
