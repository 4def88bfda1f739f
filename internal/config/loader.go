package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDir is the per-user directory for configs, logs and the database.
const HomeDir = ".flappy"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml ->
// ./configs/flappy.yaml -> embedded default.
//
// An explicit customPath must exist and parse. Files found on the search
// path are skipped when unreadable or malformed.
func Load(customPath string) (FlappyConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", cfg.Source, err)
	}
	return cfg, nil
}

func load(customPath string) (FlappyConfig, error) {
	var cfg FlappyConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fileCfg FlappyConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			continue
		}
		fileCfg.Source = path
		return fileCfg, nil
	}

	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// Parse decodes a config document, e.g. one stored alongside a replay.
func Parse(data []byte) (FlappyConfig, error) {
	var cfg FlappyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func searchPaths() []string {
	var paths []string
	if p := UserPath("configs", "flappy.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "flappy.yaml"))
}

// UserPath joins elems under ~/.flappy, or returns empty if home is
// unavailable.
func UserPath(elems ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, HomeDir}, elems...)...)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
