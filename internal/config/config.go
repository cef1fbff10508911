package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Keymap KeymapConfig `json:"keymap"`
	UI     UIConfig     `json:"ui"`
	Forge  ForgeConfig  `json:"forge"`
	Diff   DiffConfig   `json:"diff"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool        `json:"showFooter"`
	Theme      ThemeConfig `json:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string            `json:"name"`
	Overrides map[string]string `json:"overrides"`
}

// ForgeConfig configures the forge adapter's polling behavior.
type ForgeConfig struct {
	// PollInterval controls how often the open pull-request list and the
	// active PR's reviews/comments are refreshed in the background.
	PollInterval time.Duration `json:"pollInterval"`
}

// DiffConfig configures diff rendering limits.
type DiffConfig struct {
	// WrapWidth is loaded and saved with the file but no renderer reads
	// it; diff lines wider than the pane are cut with an ellipsis.
	WrapWidth int `json:"wrapWidth"`
	// MaxLines becomes gitrepo.TruncationCeiling at startup: a diff
	// output stops before the file that would take it past this many
	// lines, and gitrepo.TruncationSentinel is appended.
	MaxLines int `json:"maxLines"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter: true,
			Theme: ThemeConfig{
				Name:      "default",
				Overrides: make(map[string]string),
			},
		},
		Forge: ForgeConfig{
			PollInterval: 120 * time.Second,
		},
		Diff: DiffConfig{
			WrapWidth: 100,
			MaxLines:  10000,
		},
	}
}

// Validate checks the configuration for errors, repairing any field that
// would otherwise leave the app in a degenerate state.
func (c *Config) Validate() error {
	if c.Forge.PollInterval <= 0 {
		c.Forge.PollInterval = 120 * time.Second
	}
	if c.Diff.WrapWidth <= 0 {
		c.Diff.WrapWidth = 100
	}
	if c.Diff.MaxLines <= 0 {
		c.Diff.MaxLines = 10000
	}
	if c.Keymap.Overrides == nil {
		c.Keymap.Overrides = make(map[string]string)
	}
	if c.UI.Theme.Overrides == nil {
		c.UI.Theme.Overrides = make(map[string]string)
	}
	return nil
}
