package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration for a game.
// Search order: customPath -> ~/.cookierun/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the
// implicit locations are skipped silently.
func Load(gameID, customPath string) (RunnerConfig, error) {
	base, ok := DefaultFor(gameID)
	if !ok {
		return RunnerConfig{}, fmt.Errorf("config: unknown game %q", gameID)
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data, base)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	filename := gameID + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data, base); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(GetDefaultYAML(gameID), base)
	if err != nil {
		return base, nil // Fallback to hardcoded if the embed is broken
	}
	return cfg, nil
}

// Check loads customPath for each game and returns the first failure. With
// no game IDs every variant is checked.
func Check(customPath string, gameIDs ...string) error {
	if customPath == "" {
		return nil
	}
	if len(gameIDs) == 0 {
		gameIDs = []string{CookieRunID, DonutChaseID}
	}
	for _, id := range gameIDs {
		if _, err := Load(id, customPath); err != nil {
			return err
		}
	}
	return nil
}

// parse decodes YAML on top of base so partial files only override what they set.
func parse(data []byte, base RunnerConfig) (RunnerConfig, error) {
	cfg := base
	// Lists are replaced wholesale rather than merged element-wise.
	cfg.Spawn.ObstacleKinds = append([]string(nil), base.Spawn.ObstacleKinds...)
	cfg.Spawn.CollectibleHeights = append([]float64(nil), base.Spawn.CollectibleHeights...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cookierun", "configs", filename)
}
