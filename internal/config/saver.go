package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations
// so the config file on disk reads naturally (e.g. "120s" not 120000000000).
type saveConfig struct {
	Keymap KeymapConfig    `json:"keymap"`
	UI     UIConfig        `json:"ui"`
	Forge  saveForgeConfig `json:"forge"`
	Diff   DiffConfig      `json:"diff"`
}

type saveForgeConfig struct {
	PollInterval string `json:"pollInterval,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Keymap: cfg.Keymap,
		UI:     cfg.UI,
		Forge: saveForgeConfig{
			PollInterval: cfg.Forge.PollInterval.String(),
		},
		Diff: cfg.Diff,
	}
}

// Save writes the config to $XDG_CONFIG_HOME/timecop/config.json.
func Save(cfg *Config) error {
	path := ConfigPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SaveTheme updates only the theme name and clears overrides, then saves.
func SaveTheme(themeName string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	cfg.UI.Theme.Overrides = make(map[string]string)
	return Save(cfg)
}

// SaveThemeWithOverrides saves a theme name and full overrides map to config.
func SaveThemeWithOverrides(themeName string, overrides map[string]string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	cfg.UI.Theme.Overrides = overrides
	return Save(cfg)
}
