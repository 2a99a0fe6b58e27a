//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// Command qsieve factors a composite decimal integer with the
// Quadratic Sieve, see spec.md §6.
package main

import (
	"fmt"
	"os"

	gmath "github.com/bfix/qsieve/math"
	"github.com/bfix/qsieve/math/factorizer/qs"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// VERSION is injected by build flags.
var VERSION = "SELFBUILD"

func main() {
	app := &cli.App{
		Name:      "qsieve",
		Usage:     "factor a composite integer with the Quadratic Sieve",
		Version:   VERSION,
		ArgsUsage: "N",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Value: 0,
				Usage: "sieve worker-pool size (0 = number of CPUs)",
			},
			&cli.IntFlag{
				Name:  "shard-length",
				Value: qs.DefaultShardLength,
				Usage: "entries per sieve shard",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "qsieve: "+err.Error())
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one positional argument N is required", 2)
	}
	raw := c.Args().Get(0)
	n, err := parseN(raw)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	orch := qs.NewOrchestrator(n, c.Int("workers"), c.Int("shard-length"))
	f1, f2, err := orch.Run(c.Context)
	if err != nil {
		return cli.Exit(errors.Wrapf(err, "factoring %s", raw).Error(), 1)
	}

	fmt.Printf("Factor1\t%s\n", f1.String())
	fmt.Printf("Factor2\t%s\n", f2.String())
	return nil
}

// parseN validates that raw is a positive decimal integer greater than
// one before handing it to the orchestrator.
func parseN(raw string) (*gmath.Int, error) {
	if raw == "" {
		return nil, errors.Wrap(qs.ErrInvalidArgument, "N must not be empty")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return nil, errors.Wrap(qs.ErrParseError, "N must be a decimal integer")
		}
	}
	n := gmath.NewIntFromString(raw)
	if n.Cmp(gmath.TWO) < 0 {
		return nil, errors.Wrap(qs.ErrInvalidArgument, "N must be >= 2")
	}
	return n, nil
}
