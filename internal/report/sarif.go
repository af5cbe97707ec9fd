package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/jcconnects/n8nscan/internal/types"
)

// ToolVersion is the n8nscan version reported in SARIF output.
var ToolVersion = "dev"

// SARIFFormatter emits SARIF 2.1.0 with one run per external tool, so
// code-scanning UIs attribute each finding to the scanner that produced
// it. Finding order within a run follows record order.
type SARIFFormatter struct{}

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool      `json:"tool"`
	Results    []sarifResult  `json:"results"`
	Properties map[string]any `json:"properties,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

func (f *SARIFFormatter) Format(w io.Writer, records []types.AnalysisRecord) error {
	log := sarifLog{
		Schema:  "https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{
			buildRun(types.ToolAgenticRadar, records, func(r types.AnalysisRecord) []types.Finding {
				return r.RadarFindings
			}),
			buildRun(types.ToolSemgrep, records, func(r types.AnalysisRecord) []types.Finding {
				return r.SemgrepFindings
			}),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}

func buildRun(tool string, records []types.AnalysisRecord, pick func(types.AnalysisRecord) []types.Finding) sarifRun {
	ruleIndex := map[string]int{}
	var rules []sarifRule
	results := []sarifResult{}

	for _, record := range records {
		for _, finding := range pick(record) {
			if _, ok := ruleIndex[finding.RuleID]; !ok {
				ruleIndex[finding.RuleID] = len(rules)
				rules = append(rules, sarifRule{
					ID:               finding.RuleID,
					ShortDescription: sarifMessage{Text: finding.RuleID},
				})
			}

			uri := finding.Path
			if uri == "" {
				uri = record.WorkflowPath
			}
			results = append(results, sarifResult{
				RuleID:    finding.RuleID,
				RuleIndex: ruleIndex[finding.RuleID],
				Level:     severityToLevel(finding.Severity),
				Message:   sarifMessage{Text: finding.Message},
				Locations: []sarifLocation{
					{
						PhysicalLocation: sarifPhysicalLocation{
							ArtifactLocation: sarifArtifactLocation{URI: uri},
							Region:           sarifRegion{StartLine: max(finding.Line, 1)},
						},
					},
				},
			})
		}
	}

	return sarifRun{
		Tool: sarifTool{
			Driver: sarifDriver{
				Name:           tool,
				Version:        ToolVersion,
				InformationURI: "https://github.com/jcconnects/n8nscan",
				Rules:          rules,
			},
		},
		Results: results,
	}
}

// severityToLevel folds both tools' severity vocabularies onto SARIF levels.
func severityToLevel(severity string) string {
	switch strings.ToUpper(strings.TrimSpace(severity)) {
	case "ERROR", "CRITICAL", "HIGH":
		return "error"
	case "WARNING", "MEDIUM":
		return "warning"
	case "INFO", "LOW", "NOTE":
		return "note"
	default:
		return "none"
	}
}
