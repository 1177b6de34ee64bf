package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// Config holds the run parameters. Defaults come from environment variables,
// command-line flags override them.
type Config struct {
	InputDir      string `env:"GPX_SPLITTER_INPUT_DIR" envDefault:"./input"`
	OutputDir     string `env:"GPX_SPLITTER_OUTPUT_DIR" envDefault:"./output"`
	PointsPerFile int    `env:"GPX_SPLITTER_POINTS_PER_FILE" envDefault:"50"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("error parsing environment: %w", err)
	}

	pflag.StringVarP(&cfg.InputDir, "input", "i", cfg.InputDir, "Directory scanned for .gpx files")
	pflag.StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "Directory for split files (cleared on every run)")
	pflag.IntVarP(&cfg.PointsPerFile, "points", "p", cfg.PointsPerFile, "Maximum route points per output file")
	pflag.Parse()

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.PointsPerFile <= 0 {
		return fmt.Errorf("points per file must be positive, got %d", c.PointsPerFile)
	}
	return nil
}
