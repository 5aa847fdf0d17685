package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gxplorer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)
	return tmpFile.Name()
}

const invalidSyntaxYAML = `
panels:
  left: "/tmp
settings: # Missing closing quote and incorrect indentation
  confirm_delete: yes maybe
`

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		left := t.TempDir()
		right := t.TempDir()
		configFile := createTestYAML(t, `
panels:
  left: "`+left+`"
  right: "`+right+`"
settings:
  confirm_delete: true
  show_hidden: true
theme:
  name: "ocean"
ai:
  model: "gpt-4o"
`)
		cfg, err := config.LoadConfigFile(configFile)

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Assert specific loaded values
		assert.Equal(t, left, cfg.Panels.Left)
		assert.Equal(t, right, cfg.Panels.Right)
		assert.True(t, cfg.Settings.ConfirmDelete)
		assert.True(t, cfg.Settings.ShowHidden)
		assert.Equal(t, "ocean", cfg.Theme.Name)
		assert.Equal(t, "31", cfg.Theme.Primary)
		assert.Equal(t, "gpt-4o", cfg.AI.Model)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "dark", cfg.Theme.Name)
		assert.True(t, cfg.Settings.ConfirmDelete)
		assert.NotEmpty(t, cfg.Panels.Left)
		assert.NotEmpty(t, cfg.AI.Endpoint)
	})

	t.Run("invalid yaml syntax", func(t *testing.T) {
		configFile := createTestYAML(t, invalidSyntaxYAML)
		cfg, err := config.LoadConfigFile(configFile)

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("unknown theme rejected", func(t *testing.T) {
		configFile := createTestYAML(t, `
theme:
  name: "neon"
`)
		cfg, err := config.LoadConfigFile(configFile)

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "unknown theme")
	})

	t.Run("nonexistent pane directory rejected", func(t *testing.T) {
		configFile := createTestYAML(t, `
panels:
  left: "/definitely/not/a/real/dir"
`)
		cfg, err := config.LoadConfigFile(configFile)

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestSaveConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewTestConfig(dir)
	cfg.ApplyTheme("sunset")

	path := filepath.Join(dir, "nested", "config.yaml")
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sunset", loaded.Theme.Name)
	assert.Equal(t, dir, loaded.Panels.Left)
}

func TestThemes(t *testing.T) {
	t.Run("known themes have all colors", func(t *testing.T) {
		for _, name := range config.ListThemes() {
			theme := config.GetTheme(name)
			for _, key := range []string{"primary", "success", "warning", "error", "info", "emphasis", "border"} {
				assert.NotEmpty(t, theme[key], "theme %s missing %s", name, key)
			}
		}
	})

	t.Run("unknown theme falls back to default", func(t *testing.T) {
		assert.Equal(t, config.GetTheme("default"), config.GetTheme("nope"))
	})

	t.Run("toggle flips dark and light", func(t *testing.T) {
		cfg := config.New()
		cfg.ApplyTheme("dark")
		assert.Equal(t, "light", cfg.ToggleTheme())
		assert.Equal(t, "dark", cfg.ToggleTheme())

		// From any other theme the toggle lands on dark
		cfg.ApplyTheme("ocean")
		assert.Equal(t, "dark", cfg.ToggleTheme())
	})
}

func TestValidate(t *testing.T) {
	var nilCfg *config.Config
	assert.Error(t, nilCfg.Validate())

	cfg := config.New()
	cfg.AI.Endpoint = ""
	assert.Error(t, cfg.Validate())
}
