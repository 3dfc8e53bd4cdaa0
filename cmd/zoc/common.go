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
	"github.com/0xsoniclabs/zoc/marginal"
	"github.com/0xsoniclabs/zoc/utils"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/stat/distuv"
)

// outputFlags are accepted by every command.
var outputFlags = []cli.Flag{
	&logger.LogLevelFlag,
	&config.FormatFlag,
	&config.QuietFlag,
	&config.OutputFlag,
	&config.Sqlite3Flag,
	&config.TableFlag,
}

func withOutputFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, outputFlags...)
}

// nakagamiLinks returns the marginals of both links. Shape 1 is Rayleigh fading.
func nakagamiLinks(cfg *config.Config) (distuv.Gamma, distuv.Gamma, error) {
	mx, err := marginal.NewNakagami(cfg.ShapeX, cfg.SnrX)
	if err != nil {
		return distuv.Gamma{}, distuv.Gamma{}, err
	}
	my, err := marginal.NewNakagami(cfg.ShapeY, cfg.SnrY)
	if err != nil {
		return distuv.Gamma{}, distuv.Gamma{}, err
	}
	return mx, my, nil
}

// printSeries sends the series to the console, the output file and the
// sqlite3 database as configured.
func printSeries(cfg *config.Config, s *utils.Series) error {
	ps := utils.NewPrinters().
		AddPrinterToConsole(cfg.Quiet, cfg.Format, s).
		AddPrinterToFile(cfg.Output, s)
	ps, err := ps.AddPrinterToSqlite3(cfg.Sqlite3, cfg.Table, s)
	if err != nil {
		ps.Close()
		return err
	}
	defer ps.Close()
	return ps.Print()
}

type column struct {
	name   string
	values []float64
}

func newSeries(columns ...column) (*utils.Series, error) {
	s := utils.NewSeries()
	for _, c := range columns {
		if err := s.Add(c.name, c.values); err != nil {
			return nil, err
		}
	}
	return s, nil
}
