package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcconnects/n8nscan/internal/types"
)

// TerminalFormatter prints the end-of-run summary banner to the console.
type TerminalFormatter struct{}

func (f *TerminalFormatter) Format(w io.Writer, records []types.AnalysisRecord) error {
	divider := strings.Repeat("=", 70)

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, divider)

	var totalFindings, totalRadar, totalSemgrep int
	var totalTime float64
	for _, r := range records {
		totalFindings += r.TotalFindings
		totalRadar += len(r.RadarFindings)
		totalSemgrep += len(r.SemgrepFindings)
		totalTime += r.ExecutionTime
	}

	fmt.Fprintf(w, "Workflows analyzed: %d\n", len(records))
	fmt.Fprintf(w, "Total findings: %d (agentic-radar: %d, semgrep: %d)\n",
		totalFindings, totalRadar, totalSemgrep)
	if len(records) > 0 {
		fmt.Fprintf(w, "Average execution time: %.2fs\n", totalTime/float64(len(records)))
	}
	return nil
}
