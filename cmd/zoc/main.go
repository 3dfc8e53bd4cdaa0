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
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "Zoc",
		HelpName:  "zoc",
		Usage:     "maximum zero-outage capacity of two dependent fading links",
		Copyright: "(c) 2025 Sonic Labs",
		Commands: []*cli.Command{
			&RayleighCommand,
			&NakagamiCommand,
			&ScCommand,
			&BoundaryCommand,
			&GridCommand,
			&VerifyCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
