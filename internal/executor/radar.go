package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jcconnects/n8nscan/internal/types"
)

// DefaultOutputDir is where agentic-radar artifacts and reports land when
// no directory is configured.
const DefaultOutputDir = "analysis_output"

// RadarRunner invokes agentic-radar against one workflow file and
// normalizes whatever it wrote into the output directory. Only exit code
// 0 counts as success.
type RadarRunner struct {
	Binary    string
	OutputDir string
	Timeout   time.Duration
	Log       zerolog.Logger
}

// NewRadarRunner creates the runner and its output directory. Creation is
// idempotent: an already-present directory is not an error.
func NewRadarRunner(outputDir string, log zerolog.Logger) (*RadarRunner, error) {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}
	return &RadarRunner{
		Binary:    "agentic-radar",
		OutputDir: outputDir,
		Timeout:   DefaultTimeout,
		Log:       log,
	}, nil
}

// Run executes `agentic-radar scan <workflow> --output <dir>` and parses
// the resulting artifacts. A nil error means the tool ran to completion;
// the findings may still be empty.
func (r *RadarRunner) Run(ctx context.Context, workflowPath string) ([]types.Finding, error) {
	stem := strings.TrimSuffix(filepath.Base(workflowPath), filepath.Ext(workflowPath))
	outPath := filepath.Join(r.OutputDir, stem+"_radar")

	res, err := execTool(ctx, types.ToolAgenticRadar, r.Timeout, r.Binary,
		"scan", workflowPath, "--output", outPath)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ToolError{Tool: types.ToolAgenticRadar, Kind: FailureExit,
			Msg: fmt.Sprintf("agentic-radar failed: %s", strings.TrimSpace(res.Stderr))}
	}

	return r.parseOutput(outPath, stem), nil
}

// parseOutput reads the structured artifact agentic-radar leaves behind.
// A JSON artifact wins; an HTML report alone becomes a single synthetic
// informational finding; a broken artifact degrades to zero findings.
func (r *RadarRunner) parseOutput(outPath, stem string) []types.Finding {
	var findings []types.Finding

	jsonFile := filepath.Join(outPath, stem+".json")
	if data, err := os.ReadFile(jsonFile); err == nil {
		var decoded any
		if err := json.Unmarshal(data, &decoded); err != nil {
			r.Log.Warn().Str("file", jsonFile).Err(err).
				Msg("could not parse agentic-radar JSON")
		} else {
			switch v := decoded.(type) {
			case map[string]any:
				if list, ok := v["findings"].([]any); ok {
					findings = radarFindings(list)
				}
			case []any:
				findings = radarFindings(v)
			}
		}
	}

	htmlFile := filepath.Join(outPath, stem+".html")
	if _, err := os.Stat(htmlFile); err == nil && len(findings) == 0 {
		findings = append(findings, types.Finding{
			Tool:     types.ToolAgenticRadar,
			RuleID:   "report_generated",
			Message:  fmt.Sprintf("HTML report generated at %s", htmlFile),
			Severity: "info",
		})
	}

	return findings
}

// radarFindings maps raw artifact entries to the normalized shape.
// Non-object entries are skipped; unrecognized keys survive in Metadata.
func radarFindings(list []any) []types.Finding {
	var findings []types.Finding
	for _, raw := range list {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		f := types.Finding{
			Tool:     types.ToolAgenticRadar,
			RuleID:   stringOr(entry, "type", "unknown"),
			Message:  stringOr(entry, "message", ""),
			Severity: stringOr(entry, "severity", "info"),
		}
		extra := map[string]any{}
		for k, v := range entry {
			switch k {
			case "type", "message", "severity", "tool":
			default:
				extra[k] = v
			}
		}
		if len(extra) > 0 {
			f.Metadata = extra
		}
		findings = append(findings, f)
	}
	return findings
}
