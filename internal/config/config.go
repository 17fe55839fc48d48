package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrecision  = -1
	DefaultOutput     = "text"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultDataDir    = ".dimvar"
	DefaultTheme      = "slate"
	DefaultPlotWidth  = 70
	DefaultPlotHeight = 12
	DefaultPlotPoints = 50
)

type Config struct {
	// Precision is the number of decimals printed; -1 prints the shortest
	// exact representation.
	Precision int        `yaml:"precision"`
	Output    string     `yaml:"output"`
	LogLevel  string     `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
	DataDir   string     `yaml:"data_dir"`
	Theme     string     `yaml:"theme"`
	Plot      PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Points int `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		Precision: DefaultPrecision,
		Output:    DefaultOutput,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		DataDir:   DefaultDataDir,
		Theme:     DefaultTheme,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
			Points: DefaultPlotPoints,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Output {
	case "text", "table", "json":
	default:
		return fmt.Errorf("invalid output format: %s (want text, table or json)", c.Output)
	}
	if c.Precision < -1 {
		return fmt.Errorf("invalid precision: %d", c.Precision)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 || c.Plot.Points < 2 {
		return fmt.Errorf("invalid plot size: %dx%d with %d points", c.Plot.Width, c.Plot.Height, c.Plot.Points)
	}
	return nil
}
