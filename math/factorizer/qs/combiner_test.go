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
	"testing"

	"github.com/bfix/qsieve/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExponentMatrixParity(t *testing.T) {
	fb := &FactorBase{Primes: []*math.Int{math.NewInt(2), math.NewInt(3)}}
	r := NewSieveArray()
	r.AppendPair(math.NewInt(1), math.NewInt(12)) // 2^2 * 3^1
	r.AppendPair(math.NewInt(2), math.NewInt(18)) // 2^1 * 3^2

	a, err := BuildExponentMatrix(fb, r)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Get(0, 0)) // exponent of 2 in 12 is even
	assert.Equal(t, 1, a.Get(1, 0)) // exponent of 3 in 12 is odd
	assert.Equal(t, 1, a.Get(0, 1)) // exponent of 2 in 18 is odd
	assert.Equal(t, 0, a.Get(1, 1)) // exponent of 3 in 18 is even
	assert.Equal(t, 0, a.Get(0, 2)) // augmented column is zero
	assert.Equal(t, 0, a.Get(1, 2))
}

func TestCombineSingleSquareRelation(t *testing.T) {
	n := math.NewInt(91) // 7 * 13
	fb := &FactorBase{Primes: []*math.Int{math.NewInt(3)}}
	r := NewSieveArray()
	r.AppendPair(math.NewInt(10), math.NewInt(9)) // 10^2 - 91 = 9 = 3^2, already a square

	f1, f2, err := Combine(n, fb, r, nil)
	require.NoError(t, err)

	assert.True(t, f1.Cmp(math.ONE) > 0 && f1.Cmp(n) < 0)
	assert.True(t, f2.Cmp(math.ONE) > 0 && f2.Cmp(n) < 0)
	assert.True(t, f1.Mul(f2).Equals(n))

	got := map[int64]bool{f1.Int64(): true, f2.Int64(): true}
	assert.True(t, got[7] && got[13])
}

func TestCombineNoRelationsFails(t *testing.T) {
	n := math.NewInt(15)
	fb := &FactorBase{Primes: []*math.Int{math.NewInt(2)}}
	counters := NewCounters()
	_, _, err := Combine(n, fb, NewSieveArray(), counters)
	assert.ErrorIs(t, err, ErrFactorizationFailed)
	assert.Equal(t, int64(1), counters.Get(CounterCantFactor))
}
