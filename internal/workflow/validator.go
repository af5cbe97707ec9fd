package workflow

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jcconnects/n8nscan/internal/types"
)

// Fields every node should carry. A missing field is a warning, not an
// error: malformed-but-salvageable workflows still get scanned.
var requiredNodeFields = []string{"id", "name", "type"}

// Validator loads workflow files and checks their structure.
type Validator struct{}

// NewValidator returns a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Load reads and parses a workflow JSON file. File-level failures (missing
// file, not a regular file, broken JSON) produce exactly one error and a
// nil document. On a successful parse the structural outcome of
// ValidateStructure is returned alongside the document, warnings included.
func (v *Validator) Load(path string) (*Document, types.ValidationResult) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, invalid(fmt.Sprintf("File not found: %s", path))
		}
		return nil, invalid(fmt.Sprintf("Cannot read file: %v", err))
	}
	if !info.Mode().IsRegular() {
		return nil, invalid(fmt.Sprintf("Path is not a file: %s", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, invalid(fmt.Sprintf("Cannot read file: %v", err))
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, invalid(fmt.Sprintf("Invalid JSON syntax: %v", err))
	}

	// Non-object roots (e.g. a bare array) parse fine but have no fields;
	// structural validation reports the missing 'nodes' field.
	root, _ := AsMapping(decoded)
	doc := NewDocument(root)
	return doc, v.ValidateStructure(doc)
}

// ValidateStructure checks the parsed document against the expected n8n
// workflow shape. Only a missing or non-array 'nodes' field invalidates
// the document; everything else is advisory.
func (v *Validator) ValidateStructure(doc *Document) types.ValidationResult {
	result := types.ValidationResult{Valid: true}

	if !doc.Has("nodes") {
		result.Errors = append(result.Errors, "Missing required field: 'nodes'")
		result.Valid = false
	} else if nodes, ok := doc.Sequence("nodes"); !ok {
		result.Errors = append(result.Errors, "Field 'nodes' must be an array")
		result.Valid = false
	} else {
		for idx, raw := range nodes {
			node, ok := AsMapping(raw)
			if !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Node at index %d is not an object", idx))
				continue
			}
			for _, field := range requiredNodeFields {
				if _, present := node[field]; !present {
					result.Warnings = append(result.Warnings,
						fmt.Sprintf("Node at index %d missing field '%s'", idx, field))
				}
			}
		}
	}

	if !doc.Has("connections") {
		result.Warnings = append(result.Warnings, "Workflow has no 'connections' field")
	} else if _, ok := doc.Mapping("connections"); !ok {
		result.Warnings = append(result.Warnings, "Field 'connections' should be an object")
	}

	return result
}

func invalid(msg string) types.ValidationResult {
	return types.ValidationResult{Valid: false, Errors: []string{msg}}
}
