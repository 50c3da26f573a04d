package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "gems.yaml"

// LoadGems loads the gems configuration.
// Search order: customPath -> ~/.gems/configs/gems.yaml -> ./configs/gems.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadGems(customPath string) (GemsConfig, error) {
	var candidates []string
	if p := userConfigPath(configFile); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, filepath.Join("configs", configFile))
	return load(customPath, candidates)
}

func load(customPath string, candidates []string) (GemsConfig, error) {
	// Try custom path first; failing to read it is an error
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GemsConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GemsConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Unreadable or broken files in the search path are skipped
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGemsYAML)
	if err != nil {
		return DefaultGemsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (GemsConfig, error) {
	cfg := DefaultGemsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GemsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gems", "configs", filename)
}

// ApplyPreset replaces the difficulty section with the preset's values.
func ApplyPreset(cfg *GemsConfig, preset DifficultyPreset) {
	cfg.Difficulty = DifficultyForPreset(preset)
}
