package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jcconnects/n8nscan/internal/types"
)

// MarkdownFormatter emits the human-readable report: a summary section
// followed by one subsection per workflow with every finding from each
// tool in original order.
type MarkdownFormatter struct {
	// Now is overridable for deterministic output in tests.
	Now func() time.Time
}

func (f *MarkdownFormatter) Format(w io.Writer, records []types.AnalysisRecord) error {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	fmt.Fprintf(w, "# n8n Workflow Security Analysis Report\n\n")
	fmt.Fprintf(w, "**Generated:** %s\n\n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "**Total workflows analyzed:** %d\n\n", len(records))

	var totalFindings, totalRadar, totalSemgrep int
	for _, r := range records {
		totalFindings += r.TotalFindings
		totalRadar += len(r.RadarFindings)
		totalSemgrep += len(r.SemgrepFindings)
	}

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "- Total findings: %d\n", totalFindings)
	fmt.Fprintf(w, "- Agentic Radar findings: %d\n", totalRadar)
	fmt.Fprintf(w, "- Semgrep findings: %d\n\n", totalSemgrep)

	for idx, r := range records {
		f.printWorkflow(w, idx+1, r)
	}
	return nil
}

func (f *MarkdownFormatter) printWorkflow(w io.Writer, idx int, r types.AnalysisRecord) {
	fmt.Fprintf(w, "## Workflow %d: %s\n\n", idx, r.Metadata.WorkflowName)
	fmt.Fprintf(w, "**Path:** `%s`\n\n", r.WorkflowPath)
	fmt.Fprintf(w, "**Metadata:**\n")
	fmt.Fprintf(w, "- Workflow ID: %s\n", r.Metadata.WorkflowID)
	fmt.Fprintf(w, "- Node count: %d\n", r.Metadata.NodeCount)
	for _, nt := range sortedTypeCounts(r.Metadata.NodeTypes) {
		fmt.Fprintf(w, "  - %s: %d\n", nt.name, nt.count)
	}
	fmt.Fprintf(w, "- Execution time: %.2fs\n\n", r.ExecutionTime)

	fmt.Fprintf(w, "### Agentic Radar Findings (%d)\n\n", len(r.RadarFindings))
	if len(r.RadarFindings) > 0 {
		for _, finding := range r.RadarFindings {
			fmt.Fprintf(w, "- **%s**: %s\n", finding.RuleID, finding.Message)
		}
	} else {
		fmt.Fprintf(w, "No findings.\n")
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "### Semgrep Findings (%d)\n\n", len(r.SemgrepFindings))
	if len(r.SemgrepFindings) > 0 {
		for _, finding := range r.SemgrepFindings {
			fmt.Fprintf(w, "- **[%s]** %s (line %d): %s\n",
				finding.Severity, finding.RuleID, finding.Line, finding.Message)
		}
	} else {
		fmt.Fprintf(w, "No findings.\n")
	}
	fmt.Fprintf(w, "\n---\n\n")
}

type typeCount struct {
	name  string
	count int
}

// sortedTypeCounts fixes the iteration order so identical input always
// renders identical output.
func sortedTypeCounts(m map[string]int) []typeCount {
	out := make([]typeCount, 0, len(m))
	for name, count := range m {
		out = append(out, typeCount{name, count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
