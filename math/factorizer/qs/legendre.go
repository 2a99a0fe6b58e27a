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

package qs

import (
	"github.com/bfix/qsieve/math"
)

// Symbol computes the Legendre symbol (a/p) for an odd prime p via
// Euler's criterion: r = a^((p-1)/2) mod p. Returns 0 if p divides a,
// +1 if a is a non-zero quadratic residue mod p, -1 otherwise. A
// residue r outside {1, p-1} means p is not actually prime (or the
// routine was misused) and is reported as ErrArithmeticInconsistency
// rather than silently coerced.
func Symbol(a, p *math.Int) (int, error) {
	if a.Mod(p).Equals(math.ZERO) {
		return 0, nil
	}
	k := p.Sub(math.ONE).Div(math.TWO)
	r := a.ModPow(k, p)
	switch {
	case r.Equals(math.ONE):
		return 1, nil
	case r.Equals(p.Sub(math.ONE)):
		return -1, nil
	default:
		return 0, ErrArithmeticInconsistency
	}
}
