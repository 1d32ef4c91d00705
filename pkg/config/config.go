package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-raymarcher/pkg/renderer"
	"github.com/df07/go-raymarcher/pkg/scene"
)

// Config represents the main configuration
type Config struct {
	Scene     string       `yaml:"scene"`      // Built-in scene name or YAML scene file
	ScenesDir string       `yaml:"scenes_dir"` // Directory listed by the web viewer
	Render    RenderConfig `yaml:"render"`
	Output    OutputConfig `yaml:"output"`
	Web       WebConfig    `yaml:"web"`
}

// RenderConfig contains image size and marching parameters.
// Zero width and height keep the scene's own size.
type RenderConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Workers    int     `yaml:"workers"` // 0 = use CPU count
	MaxSteps   int     `yaml:"max_steps"`
	Epsilon    float32 `yaml:"epsilon"`
	NormalStep float32 `yaml:"normal_step"`
}

// OutputConfig controls where the CLI writes images
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// WebConfig contains web viewer settings
type WebConfig struct {
	Port          int `yaml:"port"`
	MaxResolution int `yaml:"max_resolution"` // Largest accepted width or height
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Scene:     "default",
		ScenesDir: "scenes",
		Render: RenderConfig{
			MaxSteps:   renderer.DefaultMaxSteps,
			Epsilon:    renderer.DefaultEpsilon,
			NormalStep: renderer.DefaultNormalStep,
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Web: WebConfig{
			Port:          8080,
			MaxResolution: 2048,
		},
	}
}

// LoadConfig loads the configuration from a file on top of the defaults.
// A missing file is not an error.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("error reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
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

// Validate rejects values the renderer cannot use
func (c *Config) Validate() error {
	r := c.Render
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("render size %dx%d: %w", r.Width, r.Height, scene.ErrInvalidDimensions)
	}
	if r.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", r.Workers)
	}
	if r.MaxSteps <= 0 {
		return fmt.Errorf("max_steps must be positive, got %d", r.MaxSteps)
	}
	if r.Epsilon <= 0 || r.NormalStep <= 0 {
		return fmt.Errorf("epsilon and normal_step must be positive, got %v and %v", r.Epsilon, r.NormalStep)
	}
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return fmt.Errorf("invalid web port %d", c.Web.Port)
	}
	return nil
}

// RendererConfig returns the marching parameters for the renderer
func (c *Config) RendererConfig() renderer.Config {
	return renderer.Config{
		MaxSteps:   c.Render.MaxSteps,
		Epsilon:    c.Render.Epsilon,
		NormalStep: c.Render.NormalStep,
		NumWorkers: c.Render.Workers,
	}
}
