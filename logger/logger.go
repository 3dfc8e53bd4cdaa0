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

package logger

import (
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{color}%{time:2006-01-02 15:04:05} %{level:.4s} %{module}:%{color:reset} %{message}"

// LogLevelFlag defines the verbosity of the logger
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "Level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: INFO)",
	Value:   "info",
}

// NewLogger creates a logger for the given module. Unknown levels fall
// back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	log := logging.MustGetLogger(module)
	format := logging.MustStringFormatter(defaultLogFormat)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatter)

	logLevel, err := logging.LogLevel(level)
	if err != nil {
		logLevel = logging.INFO
	}
	leveled.SetLevel(logLevel, module)
	log.SetBackend(leveled)
	return log
}

// ParseTime splits a duration into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	var (
		hours, minutes, seconds uint32
	)
	seconds = uint32(elapsed.Round(1 * time.Second).Seconds())
	if seconds > 60 {
		minutes = seconds / 60
		seconds %= 60
	}
	if minutes > 60 {
		hours = minutes / 60
		minutes %= 60
	}
	return hours, minutes, seconds
}
