// Package types defines shared data structures (Finding, WorkflowMetadata,
// AnalysisRecord) used across workflow, executor, analyzer, and report
// packages to prevent import cycles.
package types

// Names of the two external analysis tools, as they appear in findings
// and reports.
const (
	ToolAgenticRadar = "agentic-radar"
	ToolSemgrep      = "semgrep"
)

// Finding is one normalized security observation produced by either
// external tool. Severity keeps the tool's own string ("ERROR",
// "WARNING", "info", ...) since the two tools do not share a scale.
type Finding struct {
	Tool     string         `json:"tool"`
	RuleID   string         `json:"rule_id"`
	Message  string         `json:"message"`
	Severity string         `json:"severity"`
	Path     string         `json:"path,omitempty"`
	Line     int            `json:"line,omitempty"`
	Code     string         `json:"code,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ValidationResult is the outcome of loading and structurally validating
// one workflow file. Valid is true iff Errors is empty; warnings are
// advisory and never gate the pipeline.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// WorkflowMetadata holds summary statistics derived from a validated
// workflow document.
type WorkflowMetadata struct {
	Filepath         string         `json:"filepath"`
	WorkflowID       string         `json:"workflow_id"`
	WorkflowName     string         `json:"workflow_name"`
	NodeCount        int            `json:"node_count"`
	NodeTypes        map[string]int `json:"node_types"`
	HasConnections   bool           `json:"has_connections"`
	ConnectionsCount int            `json:"connections_count"`
}

// AnalysisRecord is one workflow's complete result: metadata plus the
// merged findings from both tools. Records are immutable once built.
type AnalysisRecord struct {
	WorkflowPath    string           `json:"workflow_path"`
	Metadata        WorkflowMetadata `json:"metadata"`
	RadarFindings   []Finding        `json:"agentic_radar_findings"`
	SemgrepFindings []Finding        `json:"semgrep_findings"`
	TotalFindings   int              `json:"total_findings"`
	ExecutionTime   float64          `json:"execution_time"`
	Timestamp       string           `json:"timestamp"`
}
