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

import "github.com/bfix/qsieve/math"

// firstMultipleIndex locates the start offset for sieving shard s with
// prime p, per spec.md §4.6. k selects which of the (up to) two roots
// of x² ≡ N (mod p) to report: k=0 is the first index divisible by p;
// k=1 continues scanning past it for the next divisible index r1 and
// returns it if it lies in a distinct solution class, or the first
// index again if (r1-r0) is a multiple of p. Returns -1 if no (further)
// divisible index occurs in the shard.
func firstMultipleIndex(p *math.Int, s *SieveArray, k int) int {
	n := s.Len()
	r0 := -1
	for i := 0; i < n; i++ {
		if s.Evals[i].Mod(p).Equals(math.ZERO) {
			r0 = i
			break
		}
	}
	if r0 < 0 {
		return -1
	}
	if k == 0 {
		return r0
	}
	r1 := -1
	for i := r0 + 1; i < n; i++ {
		if s.Evals[i].Mod(p).Equals(math.ZERO) {
			r1 = i
			break
		}
	}
	if r1 < 0 {
		return -1
	}
	pInt := int(p.Int64())
	if (r1-r0)%pInt == 0 {
		return r0
	}
	return r1
}

// UseTonelliShanksRoots switches the root-finding strategy inside
// SieveShard from the default linear scan of firstMultipleIndex to
// directly computing the roots of x² ≡ N (mod p) via math.SqrtModP.
// Off by default, so the documented behavior matches spec.md §4.6's
// literal two-root linear-scan description; an Orchestrator embedding
// this package can flip it once the factor base is large enough that
// scanning every shard entry per prime dominates runtime.
var UseTonelliShanksRoots = false

// tonelliResidues returns the distinct roots of x² ≡ n (mod p) in
// [0, p), or nil if n is not a quadratic residue mod p.
func tonelliResidues(n, p *math.Int) []*math.Int {
	nm := n.Mod(p)
	if p.Equals(math.TWO) || nm.Equals(math.ZERO) {
		return []*math.Int{nm}
	}
	r, err := math.SqrtModP(nm, p)
	if err != nil {
		return nil
	}
	rNeg := p.Sub(r).Mod(p)
	if r.Equals(rNeg) {
		return []*math.Int{r}
	}
	return []*math.Int{r, rNeg}
}

// SieveShard reduces every entry's residue in shard by repeated
// division by the factor-base primes and returns the subset that is
// smooth: residue reduces to ±1, see spec.md §4.6. n is the number
// being factored; it is only consulted when UseTonelliShanksRoots is
// set.
func SieveShard(n *math.Int, fb *FactorBase, shard *Shard) *SieveArray {
	s := shard.Data
	sz := s.Len()
	residues := make([]*math.Int, sz)
	copy(residues, s.Evals)

	if UseTonelliShanksRoots && sz > 0 {
		x0 := s.Ints[0]
		for _, p := range fb.Primes {
			pInt := int(p.Int64())
			for _, root := range tonelliResidues(n, p) {
				offset := root.Sub(x0).Mod(p).Int64()
				for j := int(offset); j < sz; j += pInt {
					for residues[j].Mod(p).Equals(math.ZERO) {
						residues[j] = residues[j].Div(p)
					}
				}
			}
		}
	} else {
		for _, p := range fb.Primes {
			pInt := int(p.Int64())
			for k := 0; k < 2; k++ {
				idx := firstMultipleIndex(p, s, k)
				if idx < 0 {
					continue
				}
				for j := idx; j < sz; j += pInt {
					for residues[j].Mod(p).Equals(math.ZERO) {
						residues[j] = residues[j].Div(p)
					}
				}
			}
		}
	}

	out := NewSieveArray()
	for i := 0; i < sz; i++ {
		if residues[i].Abs().Equals(math.ONE) {
			out.AppendPair(s.Ints[i], s.Evals[i])
		}
	}
	return out
}
