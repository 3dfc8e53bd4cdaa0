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
	"github.com/0xsoniclabs/zoc/config"
	"github.com/0xsoniclabs/zoc/logger"
	"github.com/0xsoniclabs/zoc/zoc"
	"github.com/urfave/cli/v2"
)

// GridCommand evaluates the Rayleigh MRC capacity over a grid of mean SNRs.
var GridCommand = cli.Command{
	Action: gridAction,
	Name:   "grid",
	Usage:  "Rayleigh MRC zero-outage capacity over a grid of mean SNRs",
	Flags: withOutputFlags(
		&config.LevelFlag,
		&config.SnrMinFlag,
		&config.SnrMaxFlag,
		&config.SnrPointsFlag,
		&config.WorkersFlag,
	),
	Description: "Prints the mean SNRs in dB (snrx, snry) and the capacity (capac) of every grid point.",
}

func gridAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Grid")

	log.Noticef("Evaluate %dx%d SNR grid at t=%v", cfg.SnrPoints, cfg.SnrPoints, cfg.Level)
	grid, err := zoc.RayleighSnrGrid(ctx.Context, cfg.Level, cfg.SnrValues(), cfg.Workers)
	if err != nil {
		return err
	}

	s, err := newSeries(
		column{"snrx", grid.SnrX},
		column{"snry", grid.SnrY},
		column{"capac", grid.Capacity},
	)
	if err != nil {
		return err
	}
	return printSeries(cfg, s)
}
