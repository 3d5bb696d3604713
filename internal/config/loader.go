package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded"

// LoadInfo describes how Load resolved the configuration.
type LoadInfo struct {
	Source  string  // Path of the file used, or SourceEmbedded
	Skipped []error // Implicit config files that exist but could not be used
}

// Load loads the Dasher configuration and reports where it came from.
// Search order: customPath -> ~/.dasher/dasher.yaml -> ./configs/dasher.yaml -> embedded default.
// An unreadable customPath is an error. Missing implicit files are skipped
// quietly; unreadable or malformed ones are skipped and listed in Skipped.
func Load(customPath string) (DasherConfig, LoadInfo, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		return cfg, LoadInfo{Source: customPath}, err
	}

	var info LoadInfo
	for _, path := range searchPaths() {
		cfg, err := loadFile(path)
		if err == nil {
			info.Source = path
			return cfg, info, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			info.Skipped = append(info.Skipped, err)
		}
	}

	info.Source = SourceEmbedded
	cfg, err := Parse(defaultDasherYAML)
	if err != nil {
		return DefaultDasherConfig(), info, nil // Fallback to hardcoded if embed fails
	}
	return cfg, info, nil
}

// Parse decodes YAML on top of the defaults, so a partial file only
// overrides the keys it names.
func Parse(data []byte) (DasherConfig, error) {
	cfg := DefaultDasherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg DasherConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

func loadFile(path string) (DasherConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DasherConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".dasher", "dasher.yaml"))
	}
	return append(paths, filepath.Join("configs", "dasher.yaml"))
}
