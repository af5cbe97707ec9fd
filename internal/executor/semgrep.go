package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jcconnects/n8nscan/internal/types"
)

// DefaultRulesPath is where the custom n8n semgrep rules are expected
// when no path is configured.
const DefaultRulesPath = "rules/n8n-generic-patterns.yaml"

// SemgrepRunner invokes semgrep with the configured rules file and
// normalizes its JSON results. Exit codes 0 and 1 both count as success
// (1 means semgrep ran and found at least one issue).
type SemgrepRunner struct {
	Binary    string
	RulesPath string
	Timeout   time.Duration
	Log       zerolog.Logger
}

// NewSemgrepRunner returns a runner for the given rules file.
func NewSemgrepRunner(rulesPath string, log zerolog.Logger) *SemgrepRunner {
	if rulesPath == "" {
		rulesPath = DefaultRulesPath
	}
	return &SemgrepRunner{
		Binary:    "semgrep",
		RulesPath: rulesPath,
		Timeout:   DefaultTimeout,
		Log:       log,
	}
}

// Run executes `semgrep --config <rules> --json <workflow>`. The rules
// file must pre-exist; otherwise the runner fails before spawning the
// subprocess.
func (s *SemgrepRunner) Run(ctx context.Context, workflowPath string) ([]types.Finding, error) {
	if _, err := os.Stat(s.RulesPath); err != nil {
		return nil, &ToolError{Tool: types.ToolSemgrep, Kind: FailureConfig,
			Msg: fmt.Sprintf("semgrep rules not found: %s", s.RulesPath)}
	}

	res, err := execTool(ctx, types.ToolSemgrep, s.Timeout, s.Binary,
		"--config", s.RulesPath, "--json", workflowPath)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 && res.ExitCode != 1 {
		return nil, &ToolError{Tool: types.ToolSemgrep, Kind: FailureExit,
			Msg: fmt.Sprintf("semgrep failed: %s", strings.TrimSpace(res.Stderr))}
	}

	return s.parseOutput(res.Stdout), nil
}

type semgrepOutput struct {
	Results []semgrepResult `json:"results"`
}

type semgrepResult struct {
	CheckID string `json:"check_id"`
	Path    string `json:"path"`
	Message string `json:"message"`
	Start   struct {
		Line int `json:"line"`
	} `json:"start"`
	Extra struct {
		Message  string         `json:"message"`
		Severity string         `json:"severity"`
		Lines    string         `json:"lines"`
		Metadata map[string]any `json:"metadata"`
	} `json:"extra"`
}

// parseOutput maps semgrep's native JSON format to the normalized shape.
// A top-level parse failure is logged and yields zero findings rather
// than failing the run.
func (s *SemgrepRunner) parseOutput(stdout string) []types.Finding {
	var out semgrepOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		s.Log.Warn().Err(err).Msg("could not parse semgrep JSON")
		return nil
	}

	var findings []types.Finding
	for _, res := range out.Results {
		ruleID := res.CheckID
		if ruleID == "" {
			ruleID = "unknown"
		}
		msg := res.Extra.Message
		if msg == "" {
			msg = res.Message
		}
		severity := res.Extra.Severity
		if severity == "" {
			severity = "WARNING"
		}
		findings = append(findings, types.Finding{
			Tool:     types.ToolSemgrep,
			RuleID:   ruleID,
			Message:  msg,
			Severity: severity,
			Path:     res.Path,
			Line:     res.Start.Line,
			Code:     res.Extra.Lines,
			Metadata: res.Extra.Metadata,
		})
	}
	return findings
}
