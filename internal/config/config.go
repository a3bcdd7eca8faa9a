// Package config handles rack model configuration loading and management.
package config

import (
	"fmt"
)

// Config holds all settings.
type Config struct {
	Rack    RackConfig    `yaml:"rack"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// RackConfig describes one rack model: its base block model, texture
// variables, and the placement of each of the four item slots.
type RackConfig struct {
	// BaseModel is a namespaced model path such as "survivalist:rack"; it is
	// resolved under the namespace's block/ directory.
	BaseModel string `yaml:"base_model"`
	// Textures are texture variables; "particle" may point at another
	// variable with a "#name" reference.
	Textures map[string]string `yaml:"textures,omitempty"`
	// Transforms maps a slot index (0-3) to its transform in the same shape
	// as the transform_<i> custom data.
	Transforms map[int]any `yaml:"transforms,omitempty"`
	// Custom holds raw JSON custom data passed through unchanged.
	Custom map[string]string `yaml:"custom,omitempty"`
	// CacheCapacity bounds each slot's transformed-quad cache; 0 is unbounded.
	CacheCapacity int `yaml:"cache_capacity"`
}

// AssetsConfig lists model definition files and the texture directory for
// the asset registry.
type AssetsConfig struct {
	Definitions []string `yaml:"definitions,omitempty"`
	// Textures is a directory laid out as <namespace>/<path>.png.
	Textures string `yaml:"textures,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Rack: RackConfig{
			CacheCapacity: 64,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that YAML decoding cannot.
func (c *Config) Validate() error {
	if c.Rack.CacheCapacity < 0 {
		return fmt.Errorf("rack.cache_capacity must not be negative, got %d", c.Rack.CacheCapacity)
	}
	for slot := range c.Rack.Transforms {
		if slot < 0 || slot > 3 {
			return fmt.Errorf("rack.transforms: slot %d out of range 0-3", slot)
		}
	}
	return nil
}
