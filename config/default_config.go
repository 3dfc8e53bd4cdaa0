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
	"github.com/0xsoniclabs/zoc/logger"
	"github.com/urfave/cli/v2"
)

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		CurvePoints: getFlagValue(ctx, CurvePointsFlag).(int),
		Format:      getFlagValue(ctx, FormatFlag).(string),
		Keep:        getFlagValue(ctx, KeepFlag).(int),
		Level:       getFlagValue(ctx, LevelFlag).(float64),
		LevelMax:    getFlagValue(ctx, LevelMaxFlag).(float64),
		LevelMin:    getFlagValue(ctx, LevelMinFlag).(float64),
		LogLevel:    getFlagValue(ctx, logger.LogLevelFlag).(string),
		Output:      getFlagValue(ctx, OutputFlag).(string),
		Points:      getFlagValue(ctx, PointsFlag).(int),
		Quiet:       getFlagValue(ctx, QuietFlag).(bool),
		RandomSeed:  getFlagValue(ctx, RandomSeedFlag).(int64),
		Samples:     getFlagValue(ctx, SamplesFlag).(int),
		ShapeX:      getFlagValue(ctx, ShapeXFlag).(float64),
		ShapeY:      getFlagValue(ctx, ShapeYFlag).(float64),
		SnrMax:      getFlagValue(ctx, SnrMaxFlag).(float64),
		SnrMin:      getFlagValue(ctx, SnrMinFlag).(float64),
		SnrPoints:   getFlagValue(ctx, SnrPointsFlag).(int),
		SnrX:        getFlagValue(ctx, SnrXFlag).(float64),
		SnrY:        getFlagValue(ctx, SnrYFlag).(float64),
		Sqlite3:     getFlagValue(ctx, Sqlite3Flag).(string),
		Table:       getFlagValue(ctx, TableFlag).(string),
		Workers:     getFlagValue(ctx, WorkersFlag).(int),
	}

	return cfg
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name)
			}

		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Int64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	}

	return nil
}
