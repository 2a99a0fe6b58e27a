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
	"github.com/pkg/errors"
)

// DefaultMaskCap bounds the number of kernel-walk masks the combiner
// tries before giving up, see spec.md §4.8.
const DefaultMaskCap = 1_000_000

// maskIndeterminateBits is wide enough to cover every free variable a
// realistic factor base produces; Solve ignores any surplus.
const maskIndeterminateBits = 48

// BuildExponentMatrix trial-divides every relation's eval by each
// factor-base prime, counting the exponent mod 2, and writes it into
// row i (prime), column j (relation) of the returned matrix. The
// augmented column |R| is left zero, making the system homogeneous.
func BuildExponentMatrix(fb *FactorBase, r *SieveArray) (*BitMatrix, error) {
	rows, cols := fb.Len(), r.Len()+1
	m, err := NewBitMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, p := range fb.Primes {
		for j := 0; j < r.Len(); j++ {
			v := r.Evals[j].Abs()
			e := 0
			for v.Sign() != 0 && v.Mod(p).Equals(math.ZERO) {
				v = v.Div(p)
				e++
			}
			m.Set(i, j, e%2)
		}
	}
	return m, nil
}

func maskBits(mask, n int) []int {
	bits := make([]int, n)
	for i := 0; i < n; i++ {
		bits[i] = (mask >> uint(i)) & 1
	}
	return bits
}

// Combine takes the smooth relations surviving the sieve (already
// concatenated into one SieveArray), builds the exponent-parity matrix, and walks kernel masks looking
// for a congruence of squares that yields a non-trivial factor of n,
// see spec.md §4.8. counters may be nil.
func Combine(n *math.Int, fb *FactorBase, relations *SieveArray, counters *Counters) (f1, f2 *math.Int, err error) {
	if relations.Len() == 0 {
		if counters != nil {
			counters.Inc(CounterCantFactor)
		}
		return nil, nil, ErrFactorizationFailed
	}
	a, err := BuildExponentMatrix(fb, relations)
	if err != nil {
		return nil, nil, errors.Wrap(err, "building exponent matrix")
	}

	for mask := 1; mask <= DefaultMaskCap; mask++ {
		// Solve mutates its receiver (row/column exchanges, in-place
		// XOR), so each mask gets its own copy of the pristine matrix;
		// otherwise mask 2 onward would solve a column-permuted system
		// whose selection vector no longer lines up with relations.
		v, err := a.Clone().Solve(maskBits(mask, maskIndeterminateBits))
		if err != nil {
			if counters != nil {
				counters.Inc(CounterUnableToSolveSystem)
			}
			continue
		}

		pEval, pInt := math.ONE, math.ONE
		selected := 0
		for j, bit := range v {
			if bit == 0 {
				continue
			}
			selected++
			pEval = pEval.Mul(relations.Evals[j])
			pInt = pInt.Mul(relations.Ints[j])
		}
		if selected == 0 || !pEval.IsSquare() {
			continue
		}

		s, err := pEval.Sqrt()
		if err != nil {
			continue
		}
		if f := n.GCD(s.Sub(pInt)); f.Cmp(math.ONE) > 0 && f.Cmp(n) < 0 {
			return f, n.Div(f), nil
		}
		if f := n.GCD(s.Add(pInt)); f.Cmp(math.ONE) > 0 && f.Cmp(n) < 0 {
			return f, n.Div(f), nil
		}
	}
	if counters != nil {
		counters.Inc(CounterCantFactor)
	}
	return nil, nil, ErrFactorizationFailed
}
