// Package analyzer sequences validation, metadata extraction, and both
// external scanners into one AnalysisRecord per workflow.
package analyzer

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jcconnects/n8nscan/internal/types"
	"github.com/jcconnects/n8nscan/internal/workflow"
)

// ToolRunner is the contract both tool adapters satisfy: run the external
// tool against one workflow and return normalized findings. A non-nil
// error means the tool did not complete; the orchestrator degrades it to
// zero findings for that tool.
type ToolRunner interface {
	Run(ctx context.Context, workflowPath string) ([]types.Finding, error)
}

// Analyzer orchestrates the hybrid analysis pipeline. The two tools run
// sequentially, radar first: they may write to overlapping output
// directories, and back-to-back execution sidesteps any cross-tool write
// races without locking.
type Analyzer struct {
	validator *workflow.Validator
	radar     ToolRunner
	semgrep   ToolRunner
	glob      string
	log       zerolog.Logger
}

// New wires an Analyzer from the two tool adapters.
func New(radar, semgrep ToolRunner, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		validator: workflow.NewValidator(),
		radar:     radar,
		semgrep:   semgrep,
		glob:      workflow.DefaultGlob,
		log:       log,
	}
}

// SetGlob overrides the batch file pattern (default "*.json").
func (a *Analyzer) SetGlob(pattern string) {
	if pattern != "" {
		a.glob = pattern
	}
}

// Analyze runs the full pipeline on one workflow file. It returns nil
// when validation fails (diagnostics are emitted for every error and
// warning); no tool is invoked for a structurally invalid workflow. Tool
// failures degrade to empty findings and never abort the record.
func (a *Analyzer) Analyze(ctx context.Context, workflowPath string) *types.AnalysisRecord {
	start := time.Now()

	a.log.Info().Str("workflow", workflowPath).Msg("loading workflow")
	doc, validation := a.validator.Load(workflowPath)

	for _, w := range validation.Warnings {
		a.log.Warn().Str("workflow", workflowPath).Msg(w)
	}
	if !validation.Valid {
		for _, e := range validation.Errors {
			a.log.Error().Str("workflow", workflowPath).Msg(e)
		}
		return nil
	}

	meta := workflow.ExtractMetadata(doc, workflowPath)
	a.log.Info().
		Str("name", meta.WorkflowName).
		Str("id", meta.WorkflowID).
		Int("nodes", meta.NodeCount).
		Int("node_types", len(meta.NodeTypes)).
		Msg("workflow metadata")

	radarFindings := a.runTool(ctx, types.ToolAgenticRadar, a.radar, workflowPath)
	semgrepFindings := a.runTool(ctx, types.ToolSemgrep, a.semgrep, workflowPath)

	return &types.AnalysisRecord{
		WorkflowPath:    workflowPath,
		Metadata:        meta,
		RadarFindings:   radarFindings,
		SemgrepFindings: semgrepFindings,
		TotalFindings:   len(radarFindings) + len(semgrepFindings),
		ExecutionTime:   time.Since(start).Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
}

func (a *Analyzer) runTool(ctx context.Context, tool string, runner ToolRunner, workflowPath string) []types.Finding {
	a.log.Info().Str("tool", tool).Msg("running analysis")
	findings, err := runner.Run(ctx, workflowPath)
	if err != nil {
		a.log.Error().Str("tool", tool).Msg(err.Error())
		return nil
	}
	a.log.Info().Str("tool", tool).Int("findings", len(findings)).Msg("analysis completed")
	return findings
}

// AnalyzeBatch analyzes every matching workflow in dir, one at a time in
// sorted order. A missing or non-directory path yields an empty result.
// Workflows that fail validation are excluded from the returned slice;
// their diagnostics were already emitted by Analyze.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, dir string) []types.AnalysisRecord {
	files := workflow.ScanDirectory(dir, a.glob)
	a.log.Info().Int("count", len(files)).Str("dir", dir).Msg("workflow files found")

	var records []types.AnalysisRecord
	for _, f := range files {
		if rec := a.Analyze(ctx, f); rec != nil {
			records = append(records, *rec)
		}
	}
	return records
}
