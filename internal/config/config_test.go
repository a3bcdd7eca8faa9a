package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rackYAML = `
rack:
  base_model: "survivalist:rack"
  textures:
    particle: "#planks"
    planks: "minecraft:blocks/planks_oak"
  transforms:
    1:
      rotation:
        y: 90
    3: identity
  custom:
    extra: "true"
  cache_capacity: 8

assets:
  definitions:
    - models.yaml
  textures: textures

logging:
  level: "debug"
  log_file: "rack.log"
  json: true
`

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Rack.CacheCapacity != 64 {
		t.Errorf("expected cache capacity 64, got %d", cfg.Rack.CacheCapacity)
	}
	if cfg.Rack.BaseModel != "" {
		t.Errorf("expected no base model, got %s", cfg.Rack.BaseModel)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(configPath, []byte(rackYAML), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "survivalist:rack", cfg.Rack.BaseModel)
	assert.Equal(t, "#planks", cfg.Rack.Textures["particle"])
	assert.Equal(t, 8, cfg.Rack.CacheCapacity)
	assert.Equal(t, "true", cfg.Rack.Custom["extra"])
	assert.Equal(t, []string{"models.yaml"}, cfg.Assets.Definitions)
	assert.Equal(t, "textures", cfg.Assets.Textures)

	require.Contains(t, cfg.Rack.Transforms, 1)
	assert.Equal(t, map[string]any{"rotation": map[string]any{"y": 90}}, cfg.Rack.Transforms[1])
	assert.Equal(t, "identity", cfg.Rack.Transforms[3])

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "rack.log", cfg.Logging.LogFile)
	assert.True(t, cfg.Logging.JSON)
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
rack:
  cache_capacity: not a number
  invalid syntax here
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

	cfg := Default()
	assert.Error(t, loadFromFile(cfg, configPath))
}

func TestLoadUnknownField(t *testing.T) {
	_, err := LoadFrom(strings.NewReader("rack:\n  base_modle: x\n"))
	assert.Error(t, err)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := Load("/nonexistent/path/rack.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	_, err := LoadFrom(strings.NewReader("rack:\n  cache_capacity: -1\n"))
	assert.Error(t, err)

	_, err = LoadFrom(strings.NewReader("rack:\n  transforms:\n    4: identity\n"))
	assert.Error(t, err)
}

func TestLoadFromEmpty(t *testing.T) {
	cfg, err := LoadFrom(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	require.NoError(t, os.Chdir(tmpDir))

	assert.Empty(t, findConfigFile())

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte("rack:\n  cache_capacity: 2\n"), 0644))
	assert.NotEmpty(t, findConfigFile())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Rack.CacheCapacity)
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Rack.BaseModel = "minecraft:furnace"
	cfg.Rack.Textures = map[string]string{"particle": "minecraft:blocks/furnace_top"}
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
