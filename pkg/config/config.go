// Package config provides configuration loading and management for volslice.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Slicing parameters
	Slicing struct {
		// SliceCount is the number of slices generated per computation
		SliceCount int `yaml:"sliceCount"`

		// Axis is the slicing axis index (0, 1, 2) = (x, y, z)
		Axis int `yaml:"axis"`

		// Padding is the fraction of the axis extent excluded from both ends
		Padding float64 `yaml:"padding"`

		// TimeDelta is the interval between time steps in seconds
		TimeDelta float64 `yaml:"timeDelta"`

		// NearestNeighbor enables path reconstruction by nearest-neighbor
		// traversal when slicing along points
		NearestNeighbor bool `yaml:"nearestNeighbor"`
	} `yaml:"slicing"`

	// Spatial index parameters
	Spatial struct {
		// Backend selects the nearest-neighbor backend ("kdtree", "rtree");
		// empty picks the preferred available backend
		Backend string `yaml:"backend"`
	} `yaml:"spatial"`

	// Output parameters
	Output struct {
		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default slicing parameters
	cfg.Slicing.SliceCount = 5
	cfg.Slicing.Axis = 0
	cfg.Slicing.Padding = 0.01
	cfg.Slicing.TimeDelta = 1.0
	cfg.Slicing.NearestNeighbor = true

	// Set default spatial parameters
	cfg.Spatial.Backend = ""

	// Set default output parameters
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
