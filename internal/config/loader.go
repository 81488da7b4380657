package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, logs and screenshots.
const AppDir = ".ballcatch"

// LoadCatch loads Ball Catch configuration.
// Search order: customPath -> ~/.ballcatch/configs/catch.yaml -> ./configs/catch.yaml -> embedded default.
// Only a custom path is allowed to fail; the other locations are skipped
// when missing or unreadable.
func LoadCatch(customPath string) (CatchConfig, error) {
	// Start from defaults so partial files only override what they name.
	cfg := DefaultCatchConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := UserPath("configs", "catch.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath, cfg); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", "catch.yaml"), cfg); ok {
		return loaded, nil
	}

	var embedded CatchConfig
	if err := yaml.Unmarshal(defaultCatchYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultCatchConfig(), nil
	}
	return embedded, nil
}

// tryLoad overlays the file at path onto base. Files that are missing,
// malformed or invalid are ignored.
func tryLoad(path string, base CatchConfig) (CatchConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if cfg.Validate() != nil {
		return base, false
	}
	return cfg, true
}

// UserPath joins elem under ~/.ballcatch, or returns "" if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// ApplyCatchPreset modifies the config based on a difficulty preset.
func ApplyCatchPreset(cfg *CatchConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Physics.BallSpeed *= 0.75
		cfg.Bar.Width += 2
	case DifficultyHard:
		cfg.Physics.BallSpeed *= 1.25
		cfg.Bar.Width = max(cfg.Bar.Width-2, 3)
	}
}

// Marshal renders cfg as YAML.
func Marshal(cfg CatchConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode config: %w", err)
	}
	return data, nil
}
