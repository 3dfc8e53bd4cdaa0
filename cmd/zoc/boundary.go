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

// BoundaryCommand prints the support boundary of the zero-outage copula at
// one outage level.
var BoundaryCommand = cli.Command{
	Action: boundaryAction,
	Name:   "boundary",
	Usage:  "sampled support boundary of the worst case joint distribution",
	Flags: withOutputFlags(
		&config.SnrXFlag,
		&config.SnrYFlag,
		&config.ShapeXFlag,
		&config.ShapeYFlag,
		&config.LevelFlag,
		&config.CurvePointsFlag,
		&config.KeepFlag,
	),
	Description: "Prints the simplified boundary points (x, y) and logs the MRC and SC SNR thresholds.",
}

func boundaryAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Boundary")

	mx, my, err := nakagamiLinks(cfg)
	if err != nil {
		return err
	}
	curve, err := zoc.BoundaryCurve(cfg.Level, mx, my, cfg.CurvePoints)
	if err != nil {
		return err
	}
	curve = zoc.CompressCurve(curve, cfg.Keep)
	log.Debugf("Boundary at t=%v simplified to %d points", cfg.Level, len(curve))

	mrc, err := zoc.CapacityMrc(cfg.Level, mx, my)
	if err != nil {
		return err
	}
	sc, err := zoc.CapacitySc(mx, my)
	if err != nil {
		return err
	}
	log.Noticef("t=%v: MRC threshold x+y >= %v, SC threshold max(x,y) >= %v", cfg.Level, zoc.Threshold(mrc), zoc.Threshold(sc))

	xs := make([]float64, len(curve))
	ys := make([]float64, len(curve))
	for i, p := range curve {
		xs[i], ys[i] = p[0], p[1]
	}
	s, err := newSeries(column{"x", xs}, column{"y", ys})
	if err != nil {
		return err
	}
	return printSeries(cfg, s)
}
