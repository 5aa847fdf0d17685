package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines pane start directories, behavior settings, theming,
// plugin discovery, and the optional AI assistant.
type Config struct {
	Panels struct {
		Left  string `yaml:"left"`  // Start directory for the left pane
		Right string `yaml:"right"` // Start directory for the right pane
	} `yaml:"panels"`
	Settings struct {
		ConfirmDelete bool `yaml:"confirm_delete"` // Ask before permanent deletion
		ShowHidden    bool `yaml:"show_hidden"`    // Show dotfiles in listings
		Effects       bool `yaml:"effects"`        // UI effect hooks (reserved)
		WatchRefresh  bool `yaml:"watch_refresh"`  // Auto-refresh panes on external changes
	} `yaml:"settings"`
	Theme struct {
		Name     string `yaml:"name"`     // Theme name (default, dark, light, etc.)
		Primary  string `yaml:"primary"`  // Primary color for branding
		Success  string `yaml:"success"`  // Success message color
		Warning  string `yaml:"warning"`  // Warning message color
		Error    string `yaml:"error"`    // Error message color
		Info     string `yaml:"info"`     // Informational message color
		Emphasis string `yaml:"emphasis"` // Emphasis color for text that should stand out
		Border   string `yaml:"border"`   // Border color for frames
	} `yaml:"theme"`
	Plugins struct {
		Directory string `yaml:"directory"` // Directory scanned for plugin descriptors
	} `yaml:"plugins"`
	AI struct {
		Endpoint  string `yaml:"endpoint"`    // Completion endpoint URL
		Model     string `yaml:"model"`       // Model name sent with each request
		APIKeyEnv string `yaml:"api_key_env"` // Env var holding the API key; empty key selects echo mode
	} `yaml:"ai"`
}

// DefaultPath returns the default config file location,
// ~/.config/gxplorer/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gxplorer", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Panels.Left != "" {
		cfg.Panels.Left = tempCfg.Panels.Left
	}
	if tempCfg.Panels.Right != "" {
		cfg.Panels.Right = tempCfg.Panels.Right
	}

	cfg.Settings.ConfirmDelete = tempCfg.Settings.ConfirmDelete
	cfg.Settings.ShowHidden = tempCfg.Settings.ShowHidden
	cfg.Settings.Effects = tempCfg.Settings.Effects
	cfg.Settings.WatchRefresh = tempCfg.Settings.WatchRefresh

	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}
	// Explicit color overrides win over the named theme
	if tempCfg.Theme.Primary != "" {
		cfg.Theme.Primary = tempCfg.Theme.Primary
	}
	if tempCfg.Theme.Border != "" {
		cfg.Theme.Border = tempCfg.Theme.Border
	}

	if tempCfg.Plugins.Directory != "" {
		cfg.Plugins.Directory = tempCfg.Plugins.Directory
	}

	if tempCfg.AI.Endpoint != "" {
		cfg.AI.Endpoint = tempCfg.AI.Endpoint
	}
	if tempCfg.AI.Model != "" {
		cfg.AI.Model = tempCfg.AI.Model
	}
	if tempCfg.AI.APIKeyEnv != "" {
		cfg.AI.APIKeyEnv = tempCfg.AI.APIKeyEnv
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	// Both panes open on the user's home directory, like every
	// commander-style manager since the beginning of time
	cfg.Panels.Left = home
	cfg.Panels.Right = home

	cfg.Settings.ConfirmDelete = true // Safe by default
	cfg.Settings.ShowHidden = false
	cfg.Settings.Effects = false
	cfg.Settings.WatchRefresh = true

	cfg.ApplyTheme("dark")

	cfg.Plugins.Directory = filepath.Join(home, ".config", "gxplorer", "plugins")

	cfg.AI.Endpoint = "https://api.openai.com/v1/completions"
	cfg.AI.Model = "gpt-4o-mini"
	cfg.AI.APIKeyEnv = "OPENAI_API_KEY"

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	// Validate theme name
	valid := false
	for _, name := range ListThemes() {
		if c.Theme.Name == name {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown theme: %s", c.Theme.Name)
	}

	// Pane start directories must exist when set; a missing directory
	// here would leave a pane with nothing to display
	for _, dir := range []string{c.Panels.Left, c.Panels.Right} {
		if dir == "" {
			continue
		}
		info, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("pane start directory does not exist: %s", dir)
			}
			return fmt.Errorf("error accessing pane start directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("pane start path is not a directory: %s", dir)
		}
	}

	if c.AI.Endpoint == "" {
		return fmt.Errorf("ai endpoint cannot be empty")
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig(dir string) *Config {
	cfg := defaultConfig()
	cfg.Panels.Left = dir
	cfg.Panels.Right = dir
	cfg.Settings.ConfirmDelete = false
	cfg.Settings.WatchRefresh = false
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"success":  "114", // Green
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "39",  // Blue
			"emphasis": "212", // Light Pink
			"border":   "213", // Purple
		},
		"dark": {
			"primary":  "105", // Dark Blue
			"success":  "78",  // Dark Green
			"warning":  "214", // Dark Yellow
			"error":    "160", // Dark Red
			"info":     "33",  // Dark Blue
			"emphasis": "147", // Light Blue
			"border":   "105", // Dark Blue
		},
		"light": {
			"primary":  "135", // Light Purple
			"success":  "150", // Light Green
			"warning":  "222", // Light Yellow
			"error":    "210", // Light Red
			"info":     "117", // Light Blue
			"emphasis": "219", // Very Light Pink
			"border":   "135", // Light Purple
		},
		"monochrome": {
			"primary":  "245", // Light Grey
			"success":  "252", // White
			"warning":  "241", // Medium Grey
			"error":    "232", // Black
			"info":     "248", // Grey
			"emphasis": "255", // Bright White
			"border":   "245", // Light Grey
		},
		"ocean": {
			"primary":  "31",  // Teal
			"success":  "36",  // Green-Blue
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "33",  // Blue
			"emphasis": "51",  // Cyan
			"border":   "31",  // Teal
		},
		"sunset": {
			"primary":  "208", // Orange
			"success":  "154", // Green
			"warning":  "214", // Dark Yellow
			"error":    "196", // Red
			"info":     "69",  // Light Green
			"emphasis": "203", // Pink-Orange
			"border":   "208", // Orange
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Warning = theme["warning"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Emphasis = theme["emphasis"]
	c.Theme.Border = theme["border"]
}

// ToggleTheme flips between the dark and light themes and returns the
// new theme name. Any other active theme switches to dark first.
func (c *Config) ToggleTheme() string {
	if c.Theme.Name == "dark" {
		c.ApplyTheme("light")
	} else {
		c.ApplyTheme("dark")
	}
	return c.Theme.Name
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "ocean", "sunset"}
}
