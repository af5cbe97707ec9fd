package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcconnects/n8nscan/internal/rules"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "n8n-generic-patterns.yaml")
	data := []byte(`
rules:
  - id: n8n-sql-injection
    severity: ERROR
    message: Possible SQL injection via workflow expression
    languages: [generic]
  - id: n8n-hardcoded-secret
    severity: WARNING
    message: Hardcoded credential in node parameters
    languages: [generic, json]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := rules.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, "n8n-sql-injection", loaded[0].ID)
	require.Equal(t, "ERROR", loaded[0].Severity)
	require.Equal(t, []string{"generic", "json"}, loaded[1].Languages)

	require.Equal(t, 2, rules.Count(path))
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := rules.Load(path)
	require.Error(t, err)
	require.Zero(t, rules.Count(path))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{nope"), 0o644))

	_, err := rules.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing")
	require.Zero(t, rules.Count(path))
}
