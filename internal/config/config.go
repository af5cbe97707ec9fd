// Package config loads .n8nscan.yml configuration files carrying output,
// rules, report format, glob, and timeout settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .n8nscan.yml configuration file. Explicit
// command-line flags take precedence over every field here.
type Config struct {
	Output         string `yaml:"output,omitempty"`
	Rules          string `yaml:"rules,omitempty"`
	Format         string `yaml:"format,omitempty"`
	Glob           string `yaml:"glob,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// Load reads the .n8nscan.yml or .n8nscan.yaml config file from the given
// path. If path is a file, its parent directory is used. If no config
// file is found, it returns a zero Config (not an error).
func Load(dir string) (Config, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for _, name := range []string{".n8nscan.yml", ".n8nscan.yaml"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if info.Size() > 1<<20 {
			return Config{}, fmt.Errorf("config file too large: %s (%d bytes, max 1 MB)", path, info.Size())
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}
	return Config{}, nil
}
