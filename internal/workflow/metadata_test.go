package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcconnects/n8nscan/internal/workflow"
)

func TestExtractMetadata(t *testing.T) {
	doc := parseDoc(t, `{
		"id": "wf-42",
		"name": "Order Sync",
		"nodes": [
			{"id":"1","name":"A","type":"http"},
			{"id":"2","name":"B","type":"http"}
		],
		"connections": {"1":{"main":[["2"]]}}
	}`)

	meta := workflow.ExtractMetadata(doc, "wf.json")
	require.Equal(t, "wf.json", meta.Filepath)
	require.Equal(t, "wf-42", meta.WorkflowID)
	require.Equal(t, "Order Sync", meta.WorkflowName)
	require.Equal(t, 2, meta.NodeCount)
	require.Equal(t, map[string]int{"http": 2}, meta.NodeTypes)
	require.True(t, meta.HasConnections)
	require.Equal(t, 1, meta.ConnectionsCount)
}

func TestExtractMetadataDefaults(t *testing.T) {
	meta := workflow.ExtractMetadata(parseDoc(t, `{"nodes":[]}`), "wf.json")
	require.Equal(t, "unknown", meta.WorkflowID)
	require.Equal(t, "unnamed", meta.WorkflowName)
	require.Zero(t, meta.NodeCount)
	require.Empty(t, meta.NodeTypes)
	require.False(t, meta.HasConnections)
	require.Zero(t, meta.ConnectionsCount)
}

func TestExtractMetadataUnknownNodeTypes(t *testing.T) {
	// Nodes without a type, with a non-string type, or that are not
	// objects at all still count, under "unknown".
	doc := parseDoc(t, `{
		"nodes": [
			{"id":"1","name":"A"},
			{"id":"2","name":"B","type":7},
			"bare-string",
			{"id":"3","name":"C","type":"set"}
		]
	}`)

	meta := workflow.ExtractMetadata(doc, "wf.json")
	require.Equal(t, 4, meta.NodeCount)
	require.Equal(t, map[string]int{"unknown": 3, "set": 1}, meta.NodeTypes)

	sum := 0
	for _, c := range meta.NodeTypes {
		sum += c
	}
	require.Equal(t, meta.NodeCount, sum)
}

func TestExtractMetadataConnectionCounting(t *testing.T) {
	doc := parseDoc(t, `{
		"nodes": [],
		"connections": {
			"a": {"main": [], "error": []},
			"b": "not-a-mapping",
			"c": [1, 2, 3],
			"d": {"main": []}
		}
	}`)

	meta := workflow.ExtractMetadata(doc, "wf.json")
	require.True(t, meta.HasConnections)
	require.Equal(t, 3, meta.ConnectionsCount)
}

func TestExtractMetadataIdempotent(t *testing.T) {
	doc := parseDoc(t, `{
		"id": "x",
		"nodes": [{"id":"1","name":"A","type":"http"}],
		"connections": {"1":{"main":[]}}
	}`)

	first := workflow.ExtractMetadata(doc, "wf.json")
	second := workflow.ExtractMetadata(doc, "wf.json")
	require.Equal(t, first, second)
}
