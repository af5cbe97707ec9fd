package workflow

import (
	"github.com/jcconnects/n8nscan/internal/types"
)

// ExtractMetadata derives summary statistics from a validated document.
// It is a pure function and never fails: missing fields fall back to
// defaults (id "unknown", name "unnamed", zero counts).
func ExtractMetadata(doc *Document, path string) types.WorkflowMetadata {
	meta := types.WorkflowMetadata{
		Filepath:     path,
		WorkflowID:   doc.StringField("id", "unknown"),
		WorkflowName: doc.StringField("name", "unnamed"),
		NodeTypes:    map[string]int{},
	}

	nodes, _ := doc.Sequence("nodes")
	meta.NodeCount = len(nodes)
	for _, raw := range nodes {
		typ := "unknown"
		if node, ok := AsMapping(raw); ok {
			typ = StringAt(node, "type", "unknown")
		}
		meta.NodeTypes[typ]++
	}

	meta.HasConnections = doc.Has("connections")
	conns, _ := doc.Mapping("connections")
	for _, v := range conns {
		// Only object-valued entries count; anything else contributes zero.
		if inner, ok := AsMapping(v); ok {
			meta.ConnectionsCount += len(inner)
		}
	}

	return meta
}
