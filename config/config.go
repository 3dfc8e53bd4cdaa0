// Copyright 2025 Sonic Labs
// This file is part of Zoc, a zero-outage capacity evaluator for dependent fading links
//
// Zoc is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zoc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Zoc. If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidConfig is returned when a flag value is out of its valid range.
var ErrInvalidConfig = errors.New("invalid configuration")

// minShape is the smallest Nakagami shape parameter.
const minShape = 0.5

// Config summarizes the available configuration of a zoc run.
type Config struct {
	AppName     string
	CommandName string

	CurvePoints int     // number of sampled boundary points
	Format      string  // console output format
	Keep        int     // boundary points kept after simplification
	Level       float64 // outage level of single level commands
	LevelMax    float64 // largest evaluated outage level
	LevelMin    float64 // smallest evaluated outage level
	LogLevel    string  // level of the logging of the app action
	Output      string  // tab delimited output file
	Points      int     // number of evaluated outage levels
	Quiet       bool    // disables console output
	RandomSeed  int64   // seed of the Monte Carlo sampler
	Samples     int     // number of Monte Carlo samples
	ShapeX      float64 // Nakagami shape of the first link
	ShapeY      float64 // Nakagami shape of the second link
	SnrMax      float64 // largest grid SNR in dB
	SnrMin      float64 // smallest grid SNR in dB
	SnrPoints   int     // number of grid SNR values per axis
	SnrX        float64 // mean SNR of the first link in dB
	SnrY        float64 // mean SNR of the second link in dB
	Sqlite3     string  // sqlite3 result database
	Table       string  // sqlite3 result table
	Workers     int     // number of worker threads
}

// NewConfig creates and validates the configuration of the current command.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	for name, v := range map[string]float64{
		"snr-x":   cfg.SnrX,
		"snr-y":   cfg.SnrY,
		"snr-min": cfg.SnrMin,
		"snr-max": cfg.SnrMax,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidConfig, "%s must be finite, got %v", name, v)
		}
	}
	if !(cfg.ShapeX >= minShape) || !(cfg.ShapeY >= minShape) {
		return errors.Wrapf(ErrInvalidConfig, "shape parameters must be at least %v, got m-x=%v m-y=%v", minShape, cfg.ShapeX, cfg.ShapeY)
	}
	for name, t := range map[string]float64{
		"t":     cfg.Level,
		"t-min": cfg.LevelMin,
		"t-max": cfg.LevelMax,
	} {
		if !(t >= 0 && t <= 1) {
			return errors.Wrapf(ErrInvalidConfig, "%s must be in [0,1], got %v", name, t)
		}
	}
	if cfg.LevelMin > cfg.LevelMax {
		return errors.Wrapf(ErrInvalidConfig, "t-min %v exceeds t-max %v", cfg.LevelMin, cfg.LevelMax)
	}
	if cfg.SnrMin > cfg.SnrMax {
		return errors.Wrapf(ErrInvalidConfig, "snr-min %v exceeds snr-max %v", cfg.SnrMin, cfg.SnrMax)
	}
	for name, n := range map[string]int{
		"points":       cfg.Points,
		"snr-points":   cfg.SnrPoints,
		"curve-points": cfg.CurvePoints,
		"keep":         cfg.Keep,
	} {
		if n < 2 {
			return errors.Wrapf(ErrInvalidConfig, "%s must be at least 2, got %d", name, n)
		}
	}
	if cfg.Samples < 1 {
		return errors.Wrapf(ErrInvalidConfig, "samples must be positive, got %d", cfg.Samples)
	}
	if cfg.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be positive, got %d", cfg.Workers)
	}
	return nil
}

// Levels returns the evenly spaced outage levels from LevelMin to LevelMax.
func (cfg *Config) Levels() []float64 {
	return floats.Span(make([]float64, cfg.Points), cfg.LevelMin, cfg.LevelMax)
}

// SnrValues returns the evenly spaced grid SNR values in dB.
func (cfg *Config) SnrValues() []float64 {
	return floats.Span(make([]float64, cfg.SnrPoints), cfg.SnrMin, cfg.SnrMax)
}
