// Package report serializes a batch of analysis records as JSON,
// Markdown, SARIF, or a terminal summary.
package report

import (
	"io"

	"github.com/jcconnects/n8nscan/internal/types"
)

// Formatter is the interface for emitting a batch of analysis records.
// Formatters are stateless and deterministic for identical input.
type Formatter interface {
	Format(w io.Writer, records []types.AnalysisRecord) error
}
