package report

import (
	"encoding/json"
	"io"

	"github.com/jcconnects/n8nscan/internal/types"
)

// JSONFormatter emits one entry per record, with the findings, execution
// time, and timestamp grouped under a nested "analysis" object.
type JSONFormatter struct{}

type jsonEntry struct {
	WorkflowPath string         `json:"workflow_path"`
	WorkflowName string         `json:"workflow_name"`
	WorkflowID   string         `json:"workflow_id"`
	NodeCount    int            `json:"node_count"`
	NodeTypes    map[string]int `json:"node_types"`
	Analysis     jsonAnalysis   `json:"analysis"`
}

type jsonAnalysis struct {
	AgenticRadarFindings []types.Finding `json:"agentic_radar_findings"`
	SemgrepFindings      []types.Finding `json:"semgrep_findings"`
	TotalFindings        int             `json:"total_findings"`
	ExecutionTime        float64         `json:"execution_time"`
	Timestamp            string          `json:"timestamp"`
}

func (f *JSONFormatter) Format(w io.Writer, records []types.AnalysisRecord) error {
	entries := make([]jsonEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, jsonEntry{
			WorkflowPath: r.WorkflowPath,
			WorkflowName: r.Metadata.WorkflowName,
			WorkflowID:   r.Metadata.WorkflowID,
			NodeCount:    r.Metadata.NodeCount,
			NodeTypes:    r.Metadata.NodeTypes,
			Analysis: jsonAnalysis{
				AgenticRadarFindings: orEmpty(r.RadarFindings),
				SemgrepFindings:      orEmpty(r.SemgrepFindings),
				TotalFindings:        r.TotalFindings,
				ExecutionTime:        r.ExecutionTime,
				Timestamp:            r.Timestamp,
			},
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// orEmpty keeps empty finding lists serializing as [] instead of null.
func orEmpty(findings []types.Finding) []types.Finding {
	if findings == nil {
		return []types.Finding{}
	}
	return findings
}
