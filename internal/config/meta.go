package config

import (
	"fmt"
	"os"
)

// InitConfig writes the commented default config template into the given
// config directory, creating the directory if needed. An existing config
// file is never overwritten.
func InitConfig(configDir string) (string, error) {
	if configDir == "" {
		configDir = DefaultConfigDirName
	}
	dir := expandHomePath(configDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	path := ConfigFilePath(dir)
	if fileExists(path) {
		return path, fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.WriteFile(path, []byte(GetDefaultConfigTemplate()), 0o644); err != nil {
		return "", fmt.Errorf("writing config template: %w", err)
	}
	return path, nil
}

// ConfigReport summarizes a check-config run.
type ConfigReport struct {
	// Files is the discovery chain actually loaded, lowest precedence first.
	Files []string
	// Config is the merge of defaults and the file layer only (no env, no CLI).
	Config *Config
}

// CheckConfig validates the discovered configuration files without running
// the rest of the pipeline: syntax, discovery, and a defaults+file merge.
// No credential is required.
func CheckConfig(opts DiscoverOptions) (*ConfigReport, error) {
	fileLayer, files, err := DiscoverFileLayer(opts)
	if err != nil {
		return nil, err
	}
	cfg, err := Unmarshal(MergeLayers(GetDefaults(), fileLayer))
	if err != nil {
		return nil, err
	}
	return &ConfigReport{Files: files, Config: cfg}, nil
}
