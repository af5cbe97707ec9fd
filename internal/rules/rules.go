// Package rules loads semgrep rule files so the CLI can describe the
// active ruleset without shelling out to semgrep. Scanning itself only
// needs the file to exist; everything here is informational.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule is the subset of a semgrep rule this tool surfaces.
type Rule struct {
	ID        string   `yaml:"id"`
	Severity  string   `yaml:"severity"`
	Message   string   `yaml:"message"`
	Languages []string `yaml:"languages"`
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// Load parses a semgrep rules YAML file.
func Load(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f.Rules, nil
}

// Count returns the number of rules in the file, or 0 when the file
// cannot be read or parsed.
func Count(path string) int {
	rules, err := Load(path)
	if err != nil {
		return 0
	}
	return len(rules)
}
