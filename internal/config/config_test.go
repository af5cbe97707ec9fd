package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcconnects/n8nscan/internal/config"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`
output: results/
rules: rules/custom.yaml
format: both
glob: "*_prod.json"
timeout_seconds: 120
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".n8nscan.yml"), data, 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "results/", cfg.Output)
	require.Equal(t, "rules/custom.yaml", cfg.Rules)
	require.Equal(t, "both", cfg.Format)
	require.Equal(t, "*_prod.json", cfg.Glob)
	require.Equal(t, 120, cfg.TimeoutSeconds)
}

func TestLoadConfigFromFilePath(t *testing.T) {
	// When given a workflow file, the config is looked up next to it.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".n8nscan.yml"), []byte("format: json\n"), 0o644))
	wf := filepath.Join(dir, "wf.json")
	require.NoError(t, os.WriteFile(wf, []byte("{}"), 0o644))

	cfg, err := config.Load(wf)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
}

func TestLoadConfigYAMLExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".n8nscan.yaml"), []byte("format: sarif\n"), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "sarif", cfg.Format)
}

func TestLoadConfigPrecedence(t *testing.T) {
	// .n8nscan.yml takes priority over .n8nscan.yaml
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".n8nscan.yml"), []byte("format: json\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".n8nscan.yaml"), []byte("format: markdown\n"), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, config.Config{}, cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".n8nscan.yml"), []byte("{{invalid yaml"), 0o644))

	_, err := config.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing")
}
