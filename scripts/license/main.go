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

// Command license checks and applies the source file license header.
package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xsoniclabs/zoc/logger"
	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLicense = `Copyright 2025 Sonic Labs
This file is part of Zoc, a zero-outage capacity evaluator for dependent fading links

Zoc is free software: you can redistribute it and/or modify
it under the terms of the GNU Lesser General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Zoc is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU Lesser General Public License for more details.

You should have received a copy of the GNU Lesser General Public License
along with Zoc. If not, see <http://www.gnu.org/licenses/>.`

// ErrMissingHeader is returned in check mode when files lack the header.
var ErrMissingHeader = errors.New("files with missing or outdated license header")

var (
	rootFlag = cli.PathFlag{
		Name:     "root",
		Usage:    "root directory to process",
		Required: true,
	}
	ignoreFlag = cli.StringSliceFlag{
		Name:  "ignore",
		Usage: "path fragments to skip",
		Value: cli.NewStringSlice("_examples/", "mock.go"),
	}
	licenseFileFlag = cli.PathFlag{
		Name:  "license-file",
		Usage: "license text replacing the embedded one",
	}
	dryRunFlag = cli.BoolFlag{
		Name:  "dry-run",
		Usage: "only report files with missing headers",
	}
)

func main() {
	app := &cli.App{
		Name:      "License Header Tool",
		HelpName:  "license",
		Usage:     "check or apply the license header of all go files",
		Copyright: "(c) 2025 Sonic Labs",
		Flags: []cli.Flag{
			&rootFlag,
			&ignoreFlag,
			&licenseFileFlag,
			&dryRunFlag,
			&logger.LogLevelFlag,
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "License")

	license := defaultLicense
	if path := ctx.Path(licenseFileFlag.Name); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "failed to read license file")
		}
		license = string(content)
	}

	return process(log, ctx.Path(rootFlag.Name), commentHeader("//", license), ctx.StringSlice(ignoreFlag.Name), ctx.Bool(dryRunFlag.Name))
}

// commentHeader prefixes every line of the license with the comment marker.
func commentHeader(prefix, license string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(license))
	for scanner.Scan() {
		if line := scanner.Text(); line == "" {
			b.WriteString(prefix + "\n")
		} else {
			b.WriteString(prefix + " " + line + "\n")
		}
	}
	return b.String()
}

// ignored reports whether path lies in a hidden directory or contains one
// of the patterns.
func ignored(root, path string, patterns []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(part, ".") && part != "." {
			return true
		}
	}
	for _, pattern := range patterns {
		if pattern != "" && strings.Contains(filepath.ToSlash(rel), pattern) {
			return true
		}
	}
	return false
}

// hasHeader reports whether content starts with header followed by a blank line.
func hasHeader(content, header string) bool {
	if !strings.HasPrefix(content, header) {
		return false
	}
	rest := content[len(header):]
	return rest == "" || strings.HasPrefix(rest, "\n")
}

// replaceHeader puts header in front of content, replacing a leading
// copyright comment block.
func replaceHeader(content, header string) string {
	lines := strings.SplitAfter(content, "\n")
	start := 0
	if len(lines) > 0 && strings.HasPrefix(lines[0], "// Copyright") {
		for start < len(lines) && strings.HasPrefix(lines[start], "//") {
			start++
		}
	}
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	return header + "\n" + strings.Join(lines[start:], "")
}

func process(log *logging.Logger, root, header string, patterns []string, dryRun bool) error {
	var missing []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || ignored(root, path, patterns) {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if hasHeader(string(content), header) {
			log.Debugf("[OK] %s", path)
			return nil
		}
		if dryRun {
			log.Warningf("[MISSING] %s", path)
			missing = append(missing, path)
			return nil
		}
		log.Noticef("[UPDATED] %s", path)
		return os.WriteFile(path, []byte(replaceHeader(string(content), header)), 0644)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to process %s", root)
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrMissingHeader, "%d files", len(missing))
	}
	return nil
}
