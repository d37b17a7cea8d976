package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/quadimg/internal/quadtree"
)

// Config collects every tunable of a compression run. CLI flags map onto
// it 1:1; a YAML file can pre-populate it.
type Config struct {
	InputPath       string  `yaml:"input"`
	OutputPath      string  `yaml:"output"`
	MaxDepth        int     `yaml:"maxDepth"`
	DetailThreshold float64 `yaml:"detailThreshold"`
	DepthLimit      int     `yaml:"depthLimit"`
	DrawLines       bool    `yaml:"drawLines"`
	Scale           float64 `yaml:"scale"`
	Page            int     `yaml:"page"`
	DPI             int     `yaml:"dpi"`
	FramesDir       string  `yaml:"framesDir"`
	Workers         int     `yaml:"workers"`
	ShowStats       bool    `yaml:"showStats"`
}

// Default returns the recommended settings.
func Default() *Config {
	return &Config{
		MaxDepth:        quadtree.DefaultMaxDepth,
		DetailThreshold: quadtree.DefaultDetailThreshold,
		DepthLimit:      quadtree.NoDepthLimit,
		Scale:           1.0,
		DPI:             150,
		Workers:         runtime.NumCPU(),
	}
}

// Load reads a YAML config file over the defaults. An empty path or a
// missing file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Options returns the tree-construction tuning held by the config.
func (c *Config) Options() quadtree.Options {
	return quadtree.Options{
		MaxDepth:        c.MaxDepth,
		DetailThreshold: c.DetailThreshold,
	}
}
