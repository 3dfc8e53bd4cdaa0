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

package main

import (
	"math"
	"time"

	"github.com/0xsoniclabs/zoc/config"
	"github.com/0xsoniclabs/zoc/logger"
	"github.com/0xsoniclabs/zoc/marginal"
	"github.com/0xsoniclabs/zoc/zoc"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/stat/distuv"
)

// RayleighCommand evaluates the MRC zero-outage capacity of two Rayleigh links
// numerically and in closed form.
var RayleighCommand = cli.Command{
	Action: rayleighAction,
	Name:   "rayleigh",
	Usage:  "MRC zero-outage capacity of two Rayleigh fading links",
	Flags: withOutputFlags(
		&config.SnrXFlag,
		&config.SnrYFlag,
		&config.LevelMinFlag,
		&config.LevelMaxFlag,
		&config.PointsFlag,
		&config.WorkersFlag,
	),
	Description: "Prints the numerical capacity (capac), the closed form (closed) and the single link bound (bound) per outage level.",
}

// NakagamiCommand evaluates the MRC zero-outage capacity of two Nakagami-m links.
var NakagamiCommand = cli.Command{
	Action: nakagamiAction,
	Name:   "nakagami",
	Usage:  "MRC zero-outage capacity of two Nakagami-m fading links",
	Flags: withOutputFlags(
		&config.SnrXFlag,
		&config.SnrYFlag,
		&config.ShapeXFlag,
		&config.ShapeYFlag,
		&config.LevelMinFlag,
		&config.LevelMaxFlag,
		&config.PointsFlag,
		&config.WorkersFlag,
	),
	Description: "Prints the capacity (capac), the optimal SNR sum (sum), its split (split) and the single link bound (bound) per outage level.",
}

func rayleighAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Rayleigh")

	lx, err := marginal.Rate(cfg.SnrX)
	if err != nil {
		return err
	}
	ly, err := marginal.Rate(cfg.SnrY)
	if err != nil {
		return err
	}
	mx, my := distuv.Exponential{Rate: lx}, distuv.Exponential{Rate: ly}

	ts := cfg.Levels()
	evaluations, err := evaluate(ctx, cfg, log, ts, mx, my)
	if err != nil {
		return err
	}

	capacities := make([]float64, len(ts))
	closed := make([]float64, len(ts))
	bounds := make([]float64, len(ts))
	for i, t := range ts {
		capacities[i] = evaluations[i].Capacity
		if closed[i], err = zoc.CapacityMrcRayleigh(t, lx, ly); err != nil {
			return err
		}
		bounds[i] = singleLinkBound(t, mx, my)
		if diff := math.Abs(closed[i] - capacities[i]); diff > 1e-6 {
			log.Warningf("t=%v: numerical and closed form capacity differ by %v", t, diff)
		}
	}

	s, err := newSeries(
		column{"tlist", ts},
		column{"capac", capacities},
		column{"closed", closed},
		column{"bound", bounds},
	)
	if err != nil {
		return err
	}
	return printSeries(cfg, s)
}

func nakagamiAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Nakagami")

	mx, my, err := nakagamiLinks(cfg)
	if err != nil {
		return err
	}

	ts := cfg.Levels()
	evaluations, err := evaluate(ctx, cfg, log, ts, mx, my)
	if err != nil {
		return err
	}

	capacities := make([]float64, len(ts))
	sums := make([]float64, len(ts))
	splits := make([]float64, len(ts))
	bounds := make([]float64, len(ts))
	for i, ev := range evaluations {
		capacities[i] = ev.Capacity
		sums[i] = ev.Sum
		splits[i] = ev.Split
		bounds[i] = singleLinkBound(ev.Level, mx, my)
	}

	s, err := newSeries(
		column{"tlist", ts},
		column{"capac", capacities},
		column{"sum", sums},
		column{"split", splits},
		column{"bound", bounds},
	)
	if err != nil {
		return err
	}
	return printSeries(cfg, s)
}

// evaluate runs the MRC search over all levels and logs the search outcome.
func evaluate(ctx *cli.Context, cfg *config.Config, log *logging.Logger, ts []float64, mx, my marginal.Marginal) ([]zoc.Evaluation, error) {
	log.Noticef("Evaluate %d outage levels in [%v, %v] with %d workers", len(ts), cfg.LevelMin, cfg.LevelMax, cfg.Workers)
	start := time.Now()
	evaluations, err := zoc.EvaluateMrcSeries(ctx.Context, ts, mx, my, cfg.Workers)
	if err != nil {
		return nil, err
	}
	for _, ev := range evaluations {
		c := ev.Candidates
		log.Debugf("t=%v: %d roots, %d brackets without sign change, %d failed", ev.Level, len(c.Roots), c.NoSignChange, c.Failed)
		if ev.Level > 0 && len(c.Roots) == 0 {
			log.Warningf("t=%v: no stationary point found, capacity falls back to the single link bound", ev.Level)
		}
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Infof("Evaluation finished in %vh %vm %vs", hours, minutes, seconds)
	return evaluations, nil
}

// singleLinkBound is the capacity reached when the other link adds nothing.
func singleLinkBound(t float64, mx, my marginal.Marginal) float64 {
	return zoc.Capacity(math.Min(mx.Quantile(t), my.Quantile(t)))
}
