// Package n8nscan provides a public API for hybrid security analysis of
// n8n workflow files. Validation and metadata extraction happen in
// process; vulnerability detection is delegated to two external tools
// (agentic-radar and semgrep) whose findings are merged into one
// normalized record per workflow.
//
// This is the library entry point. For the CLI tool, see cmd/n8nscan/.
package n8nscan

import (
	"context"
	"fmt"

	"github.com/jcconnects/n8nscan/internal/analyzer"
	"github.com/jcconnects/n8nscan/internal/executor"
	"github.com/jcconnects/n8nscan/internal/types"
	"github.com/jcconnects/n8nscan/internal/workflow"
)

// Re-export core types from internal/types so consumers don't need to
// import internal packages.
type (
	Finding          = types.Finding
	ValidationResult = types.ValidationResult
	WorkflowMetadata = types.WorkflowMetadata
	AnalysisRecord   = types.AnalysisRecord
)

const (
	ToolAgenticRadar = types.ToolAgenticRadar
	ToolSemgrep      = types.ToolSemgrep
)

// Analyze runs the full pipeline on a single workflow file. It returns an
// error when the workflow fails structural validation or when the output
// directory cannot be created; tool failures degrade to empty findings
// inside the returned record.
func Analyze(ctx context.Context, workflowPath string, opts ...Option) (*AnalysisRecord, error) {
	cfg := applyOpts(opts)
	a, err := buildAnalyzer(cfg)
	if err != nil {
		return nil, err
	}
	rec := a.Analyze(ctx, workflowPath)
	if rec == nil {
		return nil, fmt.Errorf("workflow %s failed validation", workflowPath)
	}
	return rec, nil
}

// AnalyzeBatch analyzes every matching workflow file in dir. Workflows
// that fail validation are excluded from the result; a missing directory
// yields an empty slice.
func AnalyzeBatch(ctx context.Context, dir string, opts ...Option) ([]AnalysisRecord, error) {
	cfg := applyOpts(opts)
	a, err := buildAnalyzer(cfg)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeBatch(ctx, dir), nil
}

// Validate loads a workflow file and reports its structural outcome
// without invoking any external tool.
func Validate(workflowPath string) ValidationResult {
	_, result := workflow.NewValidator().Load(workflowPath)
	return result
}

// ExtractMetadata loads a workflow file and returns its metadata, or an
// error when the file fails validation.
func ExtractMetadata(workflowPath string) (*WorkflowMetadata, error) {
	doc, result := workflow.NewValidator().Load(workflowPath)
	if !result.Valid {
		return nil, fmt.Errorf("workflow %s failed validation", workflowPath)
	}
	meta := workflow.ExtractMetadata(doc, workflowPath)
	return &meta, nil
}

// buildAnalyzer wires the two tool adapters into an Analyzer.
func buildAnalyzer(cfg *analyzeConfig) (*analyzer.Analyzer, error) {
	radar, err := executor.NewRadarRunner(cfg.outputDir, cfg.logger)
	if err != nil {
		return nil, err
	}
	if cfg.radarBinary != "" {
		radar.Binary = cfg.radarBinary
	}
	if cfg.timeout > 0 {
		radar.Timeout = cfg.timeout
	}

	semgrep := executor.NewSemgrepRunner(cfg.rulesPath, cfg.logger)
	if cfg.semgrepBinary != "" {
		semgrep.Binary = cfg.semgrepBinary
	}
	if cfg.timeout > 0 {
		semgrep.Timeout = cfg.timeout
	}

	a := analyzer.New(radar, semgrep, cfg.logger)
	a.SetGlob(cfg.glob)
	return a, nil
}
