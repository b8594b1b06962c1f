package utils

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/glife/model"
	"github.com/sheikhrachel/glife/render"
)

// DefaultConfigPath is used when no config file is given on the command line
const DefaultConfigPath = ".config/glife.yml"

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a run
type Config struct {
	Root  RootConfig  `yaml:"root"`
	Text  TextConfig  `yaml:"text"`
	Image ImageConfig `yaml:"image"`
}

// RootConfig holds the simulation settings
type RootConfig struct {
	MaxGenerations int    `yaml:"max_gen"` // 0 runs until extinction or a cycle
	InputConfig    string `yaml:"input_cfg"`
}

// TextConfig holds the terminal output settings
type TextConfig struct {
	FPS int `yaml:"fps"`
}

// ImageConfig holds the image output settings
type ImageConfig struct {
	GenerateImage bool   `yaml:"generate_image"`
	Background    string `yaml:"bkg"`
	Alive         string `yaml:"alive"`
	BlockSize     int    `yaml:"block_size"`
	Path          string `yaml:"path"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Root: RootConfig{
			MaxGenerations: 0,
			InputConfig:    "data/glider.dat",
		},
		Text: TextConfig{FPS: 2},
		Image: ImageConfig{
			GenerateImage: false,
			Background:    "black",
			Alive:         "green",
			BlockSize:     5,
			Path:          "images",
		},
	}
}

// LoadConfig loads configuration from a YAML (or JSON) file. Keys missing from the file
// keep their default values.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}
	return config, nil
}

// Validate checks value ranges and color names
func (c Config) Validate() error {
	switch {
	case c.Root.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_gen must not be negative, got %d", c.Root.MaxGenerations)
	case c.Root.InputConfig == "":
		return errors.Wrap(ErrInvalidConfig, "input_cfg is required")
	case c.Text.FPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "fps must be positive, got %d", c.Text.FPS)
	case c.Image.BlockSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "block_size must be positive, got %d", c.Image.BlockSize)
	}
	if _, err := c.Style(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// GenerationCap converts max_gen into a cap; zero means unbounded
func (c Config) GenerationCap() model.GenerationCap {
	if c.Root.MaxGenerations == 0 {
		return model.Unbounded()
	}
	return model.CapAt(c.Root.MaxGenerations)
}

// FrameDelay is the pause between generations in text mode
func (c Config) FrameDelay() time.Duration {
	if c.Image.GenerateImage || c.Text.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Text.FPS)
}

// Style resolves the image colors and block size
func (c Config) Style() (render.Style, error) {
	bg, err := render.LookupColor(c.Image.Background)
	if err != nil {
		return render.Style{}, errors.Wrap(err, "bkg")
	}
	alive, err := render.LookupColor(c.Image.Alive)
	if err != nil {
		return render.Style{}, errors.Wrap(err, "alive")
	}
	return render.Style{Background: bg, Alive: alive, BlockSize: c.Image.BlockSize}, nil
}
