// Package config loads xvgplot settings from defaults, the environment and a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot"
	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/plot"
)

// EnvPrefix prefixes every environment variable, e.g. XVGPLOT_PARSE_MAX_HEADER_LINES.
const EnvPrefix = "XVGPLOT"

// Config represents the complete tool configuration
type Config struct {
	Parse   ParseConfig   `yaml:"parse"`
	Plot    PlotConfig    `yaml:"plot"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParseConfig contains parser settings
type ParseConfig struct {
	MaxHeaderLines int  `yaml:"max_header_lines" split_words:"true" default:"30" validate:"min=1"`
	Jobs           int  `yaml:"jobs" split_words:"true" default:"1" validate:"min=1,max=256"`
	SkipInvalid    bool `yaml:"skip_invalid" split_words:"true" default:"false"`
}

// PlotConfig contains figure settings
type PlotConfig struct {
	Output      string  `yaml:"output" split_words:"true" default:"output.png" validate:"required"`
	WidthPt     float64 `yaml:"width_pt" split_words:"true" default:"426.79135" validate:"gt=0"`
	Fraction    float64 `yaml:"fraction" split_words:"true" default:"1" validate:"gt=0,lte=1"`
	DPI         float64 `yaml:"dpi" split_words:"true" default:"300" validate:"gt=0,lte=2400"`
	FontSize    float64 `yaml:"font_size" split_words:"true" default:"8" validate:"gt=0"`
	Grid        bool    `yaml:"grid" split_words:"true" default:"true"`
	Transparent bool    `yaml:"transparent" split_words:"true" default:"true"`
	Average     bool    `yaml:"average" split_words:"true" default:"false"`
	LegendFrom  string  `yaml:"legend_from" split_words:"true" default:"file" validate:"oneof=file legend"`
	Title       string  `yaml:"title" split_words:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" split_words:"true" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" split_words:"true" default:"text" validate:"oneof=text json"`
}

// Load builds the configuration.
// Defaults and XVGPLOT_* environment variables are applied first; if path is
// not empty, the YAML file at path overrides whatever keys it sets.
// Only prefixed variables are read, so bare names such as FORMAT or OUTPUT
// in the caller's shell have no effect.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile decodes the YAML file at path on top of cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// ParseOptions converts the parse settings to parser options.
func (c *Config) ParseOptions() xvgplot.Options {
	return xvgplot.Options{
		MaxHeaderLines: c.Parse.MaxHeaderLines,
		Concurrency:    c.Parse.Jobs,
	}
}

// Style converts the plot settings to a plot style.
// The image format follows the output file extension.
func (c *Config) Style() plot.Style {
	return plot.Style{
		WidthPt:     c.Plot.WidthPt,
		Fraction:    c.Plot.Fraction,
		DPI:         c.Plot.DPI,
		FontSize:    c.Plot.FontSize,
		Grid:        c.Plot.Grid,
		Transparent: c.Plot.Transparent,
		ShowAverage: c.Plot.Average,
		LegendFrom:  plot.LegendSource(c.Plot.LegendFrom),
		Title:       c.Plot.Title,
		Format:      plot.FormatFromPath(c.Plot.Output),
	}
}
