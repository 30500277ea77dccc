package main

import (
	goerrors "errors"
	"os"

	"github.com/MikhayN/omim/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config represents the optional mapanim.yaml tuning file.
type config struct {
	Window windowConfig `yaml:"window"`
	Grid   gridConfig   `yaml:"grid"`
	Tour   tourConfig   `yaml:"tour"`
}

// windowConfig contains window settings.
type windowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// gridConfig contains the synthetic map grid settings, in global units.
type gridConfig struct {
	Step   float64 `yaml:"step,omitempty"`
	Extent float64 `yaml:"extent,omitempty"`
}

// tourConfig contains settings for the scripted tour.
type tourConfig struct {
	Eased bool `yaml:"eased,omitempty"`
}

// defaultConfig returns the values used when mapanim.yaml is absent or
// leaves fields unset.
func defaultConfig() *config {
	return &config{
		Window: windowConfig{Width: 1000, Height: 1000},
		Grid:   gridConfig{Step: 100, Extent: 2000},
		Tour:   tourConfig{Eased: true},
	}
}

// loadConfig reads the tuning file if present, filling unset fields with
// defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.New("mapanim.loadConfig", errors.KindConfig, "failed to read %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("mapanim.loadConfig", errors.KindConfig, "failed to parse %s: %v", path, err)
	}

	if cfg.Window.Width <= 0 {
		cfg.Window.Width = 1000
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = 1000
	}
	if cfg.Grid.Step <= 0 {
		cfg.Grid.Step = 100
	}
	if cfg.Grid.Extent <= 0 {
		cfg.Grid.Extent = 2000
	}
	return cfg, nil
}
