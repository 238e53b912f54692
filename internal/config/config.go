package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Colors   ColorsConfig   `json:"colors"`
	Loader   LoaderConfig   `json:"loader"`
	Runtime  RuntimeConfig  `json:"runtime"`
	Labeling LabelingConfig `json:"labeling"`
}

// ColorsConfig holds configuration for dominant-color extraction
type ColorsConfig struct {
	NColors           int     `json:"n_colors"`
	MinAreaPercentage float64 `json:"min_area_percentage"`
	Seed              int64   `json:"seed"`
	MaxIterations     int     `json:"max_iterations"`
	QuantizeStep      int     `json:"quantize_step"`
}

// LoaderConfig holds configuration for image loading
type LoaderConfig struct {
	ResizeSize int `json:"resize_size"`
}

// RuntimeConfig holds configuration for batch scheduling
type RuntimeConfig struct {
	Workers             int `json:"workers"`
	BatchSize           int `json:"batch_size"`
	ImageTimeoutSeconds int `json:"image_timeout_seconds"`
}

// LabelingConfig holds configuration for garment labeling via a vision model
type LabelingConfig struct {
	Backend     string `json:"backend"` // "ollama" or "llamacpp"
	URL         string `json:"url"`
	Model       string `json:"model"`
	SendSize    int    `json:"send_size"`
	SendQuality int    `json:"send_quality"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Colors: ColorsConfig{
			NColors:           5,
			MinAreaPercentage: 5.0,
			Seed:              42,
			MaxIterations:     50,
			QuantizeStep:      0,
		},
		Loader: LoaderConfig{
			ResizeSize: 250,
		},
		Runtime: RuntimeConfig{
			Workers:             4,
			BatchSize:           100,
			ImageTimeoutSeconds: 30,
		},
		Labeling: LabelingConfig{
			Backend:     "ollama",
			URL:         "http://localhost:11434",
			Model:       "llava:latest",
			SendSize:    512,
			SendQuality: 85,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Colors.NColors < 1 || c.Colors.NColors > 64 {
		return fmt.Errorf("colors.n_colors must be between 1 and 64")
	}

	if c.Colors.MinAreaPercentage < 0 || c.Colors.MinAreaPercentage > 100 {
		return fmt.Errorf("colors.min_area_percentage must be between 0 and 100")
	}

	if c.Colors.MaxIterations < 1 {
		return fmt.Errorf("colors.max_iterations must be positive")
	}

	if c.Colors.QuantizeStep < 0 || c.Colors.QuantizeStep > 128 {
		return fmt.Errorf("colors.quantize_step must be between 0 and 128")
	}

	if c.Loader.ResizeSize < 0 {
		return fmt.Errorf("loader.resize_size must not be negative")
	}

	if c.Runtime.Workers < 1 {
		return fmt.Errorf("runtime.workers must be positive")
	}

	if c.Runtime.BatchSize < 1 {
		return fmt.Errorf("runtime.batch_size must be positive")
	}

	if c.Runtime.ImageTimeoutSeconds < 1 {
		return fmt.Errorf("runtime.image_timeout_seconds must be positive")
	}

	if c.Labeling.Backend != "ollama" && c.Labeling.Backend != "llamacpp" {
		return fmt.Errorf("labeling.backend must be ollama or llamacpp")
	}

	if c.Labeling.SendSize < 1 {
		return fmt.Errorf("labeling.send_size must be positive")
	}

	if c.Labeling.SendQuality < 1 || c.Labeling.SendQuality > 100 {
		return fmt.Errorf("labeling.send_quality must be between 1 and 100")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "runway-color", "config.json")
}
