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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitMatrixGetSet(t *testing.T) {
	m, err := NewBitMatrix(3, 40)
	require.NoError(t, err)
	m.Set(1, 35, 1)
	assert.Equal(t, 1, m.Get(1, 35))
	assert.Equal(t, 0, m.Get(1, 34))
	m.Set(1, 35, 0)
	assert.Equal(t, 0, m.Get(1, 35))
}

func TestBitMatrixStringRoundTrip(t *testing.T) {
	const in = "[0010]\n[1100]\n[0011]\n"
	m, err := ParseBitMatrix(in)
	require.NoError(t, err)
	assert.Equal(t, in, m.String())
}

func TestParseBitMatrixMalformed(t *testing.T) {
	cases := []string{"", "0010\n", "[001\n", "[0012]\n", "[001]\n[01]\n"}
	for _, c := range cases {
		_, err := ParseBitMatrix(c)
		assert.ErrorIs(t, err, ErrParseError, "input %q", c)
	}
}

func TestBitMatrixExchangeRows(t *testing.T) {
	m, err := ParseBitMatrix("[1101]\n[0011]\n")
	require.NoError(t, err)
	m.ExchangeRows(0, 1, 0)
	assert.Equal(t, "[0011]\n[1101]\n", m.String())
}

func TestBitMatrixExchangeRowsPreservesPrefix(t *testing.T) {
	m, err := ParseBitMatrix("[110011]\n[001010]\n")
	require.NoError(t, err)
	m.ExchangeRows(0, 1, 2)
	assert.Equal(t, "[111010]\n[000011]\n", m.String())
}

func TestBitMatrixReduceRow(t *testing.T) {
	m, err := ParseBitMatrix("[1110]\n[1001]\n")
	require.NoError(t, err)
	m.ReduceRow(0, 1, 0)
	assert.Equal(t, "[1110]\n[0111]\n", m.String())
}

func TestBitMatrixReduceRowNoOp(t *testing.T) {
	m, err := ParseBitMatrix("[1110]\n[0101]\n")
	require.NoError(t, err)
	m.ReduceRow(0, 1, 0)
	assert.Equal(t, "[1110]\n[0101]\n", m.String())
}

func TestBitMatrixTranspose(t *testing.T) {
	m, err := ParseBitMatrix("[10]\n[11]\n[01]\n")
	require.NoError(t, err)
	tr := m.Transpose()
	assert.Equal(t, 2, tr.Rows())
	assert.Equal(t, 3, tr.Cols())
	assert.Equal(t, "[110]\n[011]\n", tr.String())
}

func TestBitMatrixSolveExample(t *testing.T) {
	m, err := ParseBitMatrix("[1101]\n[0110]\n[0011]\n")
	require.NoError(t, err)
	v, err := m.Solve(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, v)

	for i := 0; i < m.Rows(); i++ {
		sum := 0
		for j := 0; j < len(v); j++ {
			sum ^= m.Get(i, j) & v[j]
		}
		assert.Equal(t, m.Get(i, m.Cols()-1), sum, "row %d not satisfied", i)
	}
}

func TestBitMatrixSolveInconsistent(t *testing.T) {
	m, err := ParseBitMatrix("[101]\n[001]\n")
	require.NoError(t, err)
	_, err = m.Solve(nil)
	assert.ErrorIs(t, err, ErrInconsistent)
}

func TestNewBitMatrixInvalidArgument(t *testing.T) {
	_, err := NewBitMatrix(0, 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewBitMatrix(5, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
