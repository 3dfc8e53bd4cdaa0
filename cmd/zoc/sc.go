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

// ScCommand evaluates the maximum zero-outage capacity of selection combining.
var ScCommand = cli.Command{
	Action: scAction,
	Name:   "sc",
	Usage:  "SC zero-outage capacity of two Nakagami-m fading links",
	Flags: withOutputFlags(
		&config.SnrXFlag,
		&config.SnrYFlag,
		&config.ShapeXFlag,
		&config.ShapeYFlag,
	),
	Description: "Prints the optimal level split (pstar), the capacity (capac) and the SNR threshold (thres).",
}

func scAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Sc")

	mx, my, err := nakagamiLinks(cfg)
	if err != nil {
		return err
	}
	p, err := zoc.PStar(mx.Quantile, my.Quantile)
	if err != nil {
		return err
	}
	capacity, err := zoc.CapacitySc(mx, my)
	if err != nil {
		return err
	}
	log.Infof("Links meet at p*=%v", p)

	s, err := newSeries(
		column{"pstar", []float64{p}},
		column{"capac", []float64{capacity}},
		column{"thres", []float64{zoc.Threshold(capacity)}},
	)
	if err != nil {
		return err
	}
	return printSeries(cfg, s)
}
