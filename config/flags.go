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
	"github.com/urfave/cli/v2"
)

var (
	SnrXFlag = cli.Float64Flag{
		Name:  "snr-x",
		Usage: "mean SNR of the first link in dB",
	}
	SnrYFlag = cli.Float64Flag{
		Name:  "snr-y",
		Usage: "mean SNR of the second link in dB",
	}
	ShapeXFlag = cli.Float64Flag{
		Name:  "m-x",
		Usage: "Nakagami shape parameter of the first link (m >= 0.5)",
		Value: 1,
	}
	ShapeYFlag = cli.Float64Flag{
		Name:  "m-y",
		Usage: "Nakagami shape parameter of the second link (m >= 0.5)",
		Value: 1,
	}
	LevelFlag = cli.Float64Flag{
		Name:  "t",
		Usage: "outage level in [0,1] for single level commands",
		Value: 0.5,
	}
	LevelMinFlag = cli.Float64Flag{
		Name:  "t-min",
		Usage: "smallest evaluated outage level",
		Value: 0,
	}
	LevelMaxFlag = cli.Float64Flag{
		Name:  "t-max",
		Usage: "largest evaluated outage level",
		Value: 1,
	}
	PointsFlag = cli.IntFlag{
		Name:  "points",
		Usage: "number of evenly spaced outage levels",
		Value: 50,
	}
	SnrMinFlag = cli.Float64Flag{
		Name:  "snr-min",
		Usage: "smallest mean SNR of the grid in dB",
		Value: -10,
	}
	SnrMaxFlag = cli.Float64Flag{
		Name:  "snr-max",
		Usage: "largest mean SNR of the grid in dB",
		Value: 10,
	}
	SnrPointsFlag = cli.IntFlag{
		Name:  "snr-points",
		Usage: "number of SNR values per grid axis",
		Value: 21,
	}
	CurvePointsFlag = cli.IntFlag{
		Name:  "curve-points",
		Usage: "number of sampled points of the boundary curve",
		Value: 500,
	}
	KeepFlag = cli.IntFlag{
		Name:  "keep",
		Usage: "number of boundary points kept after simplification",
		Value: 25,
	}
	SamplesFlag = cli.IntFlag{
		Name:  "samples",
		Usage: "number of Monte Carlo samples",
		Value: 100_000,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "seed of the Monte Carlo sampler",
		Value: 1,
	}
	WorkersFlag = cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "number of worker threads evaluating outage levels",
		Value:   4,
	}
	FormatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "console output format (table, csv, markdown)",
		Value: "table",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "disable console output",
	}
	OutputFlag = cli.PathFlag{
		Name:  "output",
		Usage: "tab delimited output file",
	}
	Sqlite3Flag = cli.PathFlag{
		Name:  "sqlite3",
		Usage: "sqlite3 database receiving the results",
	}
	TableFlag = cli.StringFlag{
		Name:  "table",
		Usage: "name of the sqlite3 result table",
		Value: "capacity",
	}
)
