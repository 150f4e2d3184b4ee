package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"asciitrace/internal/util"
)

// Config represents the main configuration
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Raytracer RaytracerConfig `yaml:"raytracer"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Scene     SceneConfig     `yaml:"scene"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DisplayConfig contains terminal output configuration
type DisplayConfig struct {
	Width     int  `yaml:"width"`     // 0 = terminal width
	Height    int  `yaml:"height"`    // 0 = terminal height minus one row
	FrameRate int  `yaml:"framerate"` // 0 = uncapped
	ShowStats bool `yaml:"show_stats"`
}

// RaytracerConfig contains raytracer configuration
type RaytracerConfig struct {
	NumThreads     int     `yaml:"num_threads"` // 0 = one per CPU
	MaxBounces     int     `yaml:"max_bounces"`
	ShadowsEnabled bool    `yaml:"shadows_enabled"`
	CharAspect     float64 `yaml:"char_aspect"` // height/width of one terminal cell
}

// RendererConfig contains renderer configuration
type RendererConfig struct {
	CharSet string `yaml:"charset"` // The set of ASCII characters to use for rendering
}

// SceneConfig selects the built-in scene and its animation length
type SceneConfig struct {
	Preset string  `yaml:"preset"`
	Turns  float64 `yaml:"turns"` // camera/light orbits before exiting, 0 = forever
}

// LoggingConfig contains logger configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:     0,
			Height:    0,
			FrameRate: 60,
			ShowStats: true,
		},
		Raytracer: RaytracerConfig{
			NumThreads:     0,
			MaxBounces:     8,
			ShadowsEnabled: true,
			CharAspect:     2.0,
		},
		Renderer: RendererConfig{
			CharSet: " .:-=+*#%@",
		},
		Scene: SceneConfig{
			Preset: "courtyard",
			Turns:  4,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadConfig loads the configuration from a file. A missing file yields the
// defaults.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	if filePath == "" || !util.FileExists(filePath) {
		return config, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("error reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", filePath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Display.Width < 0 || c.Display.Height < 0 {
		return fmt.Errorf("display size %dx%d must not be negative", c.Display.Width, c.Display.Height)
	}
	if c.Display.FrameRate < 0 {
		return fmt.Errorf("framerate %d must not be negative", c.Display.FrameRate)
	}
	if c.Raytracer.NumThreads < 0 {
		return fmt.Errorf("num_threads %d must not be negative", c.Raytracer.NumThreads)
	}
	if c.Raytracer.MaxBounces < 0 {
		return fmt.Errorf("max_bounces %d must not be negative", c.Raytracer.MaxBounces)
	}
	if c.Raytracer.CharAspect <= 0 {
		return fmt.Errorf("char_aspect %g must be positive", c.Raytracer.CharAspect)
	}
	if len(c.Renderer.CharSet) < 2 {
		return fmt.Errorf("charset %q must have at least 2 characters", c.Renderer.CharSet)
	}
	if c.Scene.Turns < 0 {
		return fmt.Errorf("turns %g must not be negative", c.Scene.Turns)
	}
	return nil
}
