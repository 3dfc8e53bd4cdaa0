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
	"math/rand"

	"github.com/0xsoniclabs/zoc/config"
	"github.com/0xsoniclabs/zoc/copula"
	"github.com/0xsoniclabs/zoc/logger"
	"github.com/0xsoniclabs/zoc/zoc"
	"github.com/urfave/cli/v2"
)

// VerifyCommand compares the analytic thresholds with Monte Carlo samples
// drawn from the optimal dependency structures.
var VerifyCommand = cli.Command{
	Action: verifyAction,
	Name:   "verify",
	Usage:  "cross-check the zero-outage thresholds by sampling",
	Flags: withOutputFlags(
		&config.SnrXFlag,
		&config.SnrYFlag,
		&config.ShapeXFlag,
		&config.ShapeYFlag,
		&config.LevelFlag,
		&config.SamplesFlag,
		&config.RandomSeedFlag,
	),
	Description: "Prints the analytic and sampled MRC (mrc, mrcmc) and SC (sc, scmc) SNR thresholds. Sampled values never fall below the analytic ones.",
}

func verifyAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Verify")

	mx, my, err := nakagamiLinks(cfg)
	if err != nil {
		return err
	}
	c, err := copula.New(cfg.Level)
	if err != nil {
		return err
	}
	mrc, err := zoc.CapacityMrc(cfg.Level, mx, my)
	if err != nil {
		return err
	}
	sc, err := zoc.CapacitySc(mx, my)
	if err != nil {
		return err
	}

	log.Noticef("Draw %d samples with seed %d", cfg.Samples, cfg.RandomSeed)
	rg := rand.New(rand.NewSource(cfg.RandomSeed))
	mrcSampled := copula.EmpiricalMrcSum(rg, c, cfg.Samples, mx, my)
	scSampled := copula.EmpiricalScThreshold(rg, cfg.Samples, mx, my)

	s, err := newSeries(
		column{"tlist", []float64{cfg.Level}},
		column{"mrc", []float64{zoc.Threshold(mrc)}},
		column{"mrcmc", []float64{mrcSampled}},
		column{"sc", []float64{zoc.Threshold(sc)}},
		column{"scmc", []float64{scSampled}},
	)
	if err != nil {
		return err
	}
	return printSeries(cfg, s)
}
