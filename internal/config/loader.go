package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// ConfigPath returns the path to the config file, honoring XDG_CONFIG_HOME
// and falling back to ~/.config/timecop/config.json.
func ConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "timecop", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "timecop", "config.json")
	}
	return filepath.Join(home, ".config", "timecop", "config.json")
}

// Load reads the config file at ConfigPath, returning defaults merged
// with anything on disk. A missing file is not an error; it just yields
// the defaults.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config file at path, returning defaults merged with
// anything on disk. A missing file is not an error; it just yields the
// defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	sc := toSaveConfig(cfg)
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, err
	}

	cfg.Keymap = sc.Keymap
	cfg.UI = sc.UI
	cfg.Diff = sc.Diff
	if sc.Forge.PollInterval != "" {
		if d, err := time.ParseDuration(sc.Forge.PollInterval); err == nil {
			cfg.Forge.PollInterval = d
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
