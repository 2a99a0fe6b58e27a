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

package math

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrNegativeArgument is returned by Sqrt for a negative argument.
var ErrNegativeArgument = errors.New("negative argument")

// sqrtPrecision is the number of bits of fractional precision carried
// by the Newton iteration in Sqrt; comfortably above the decimal
// scale of 10 significant digits required by spec.
const sqrtPrecision = 128

// Sqrt returns floor(sqrt(a)) for a >= 0. It seeds the iteration at
// q0 = 2^floor(bitlen(a)/2) and refines with q <- q + (a - q^2)/(2q)
// using fixed-precision big.Float arithmetic (round-half-to-even)
// until the adjustment term has magnitude <= 1, then floors the
// result.
func (i *Int) Sqrt() (*Int, error) {
	if i.Sign() < 0 {
		return nil, ErrNegativeArgument
	}
	if i.Sign() == 0 {
		return ZERO, nil
	}

	a := new(big.Float).SetPrec(sqrtPrecision).SetMode(big.ToNearestEven).SetInt(i.v)

	seedBits := i.BitLen() / 2
	q := new(big.Float).SetPrec(sqrtPrecision).SetMode(big.ToNearestEven).
		SetInt(new(big.Int).Lsh(big.NewInt(1), uint(seedBits)))

	two := new(big.Float).SetPrec(sqrtPrecision).SetInt64(2)
	one := new(big.Float).SetPrec(sqrtPrecision).SetInt64(1)

	for {
		q2 := new(big.Float).SetPrec(sqrtPrecision).Mul(q, q)
		num := new(big.Float).SetPrec(sqrtPrecision).Sub(a, q2)
		den := new(big.Float).SetPrec(sqrtPrecision).Mul(two, q)
		adj := new(big.Float).SetPrec(sqrtPrecision).Quo(num, den)

		q = q.Add(q, adj)

		if adj.Abs(adj).Cmp(one) <= 0 {
			break
		}
	}

	// floor(q), then nudge to account for any residual rounding error
	// in the fixed-precision iteration.
	r, _ := q.Int(nil)
	res := &Int{v: r}
	for res.Mul(res).Cmp(i) > 0 {
		res = res.Sub(ONE)
	}
	for res.Add(ONE).Mul(res.Add(ONE)).Cmp(i) <= 0 {
		res = res.Add(ONE)
	}
	return res, nil
}

// IsSquare reports whether a is a perfect square (a >= 0 required; a
// negative argument is never a square).
func (i *Int) IsSquare() bool {
	if i.Sign() < 0 {
		return false
	}
	r, err := i.Sqrt()
	if err != nil {
		return false
	}
	return r.Mul(r).Equals(i)
}

// IsPrimeTrial tests primality of a by trial division against every
// integer in [2, a-1]. It is only suitable for the small candidates
// (roughly <= 10^5) considered during factor-base construction;
// performance is not a design goal of this routine, see spec.md §4.1.
func IsPrimeTrial(a *Int) bool {
	if a.Cmp(TWO) < 0 {
		return false
	}
	if a.Equals(TWO) {
		return true
	}
	for d := NewInt(2); d.Cmp(a) < 0; d = d.Add(ONE) {
		if a.Mod(d).Equals(ZERO) {
			return false
		}
	}
	return true
}
