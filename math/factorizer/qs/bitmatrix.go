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

import "strings"

// word size for the packed GF(2) matrix storage, see spec.md §4.7. The
// bit-packing scheme (resolve a column index into a word index and an
// in-word mask) follows the same technique the teacher's bloom filter
// uses to resolve entry indices into byte/bit positions.
const (
	wordBits  = 32
	wordShift = 5
	wordMask  = wordBits - 1
)

// BitMatrix is a dense m×n matrix over GF(2), packed row-major into
// machine words. All access goes through Get/Set; no exposed word
// layout, see spec.md §3.
type BitMatrix struct {
	rows, cols  int
	wordsPerRow int
	data        [][]uint32
}

// NewBitMatrix allocates a zeroed rows×cols GF(2) matrix.
func NewBitMatrix(rows, cols int) (*BitMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidArgument
	}
	words := (cols + wordBits - 1) / wordBits
	data := make([][]uint32, rows)
	for i := range data {
		data[i] = make([]uint32, words)
	}
	return &BitMatrix{rows: rows, cols: cols, wordsPerRow: words, data: data}, nil
}

// Rows returns the row count.
func (m *BitMatrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *BitMatrix) Cols() int { return m.cols }

// Get returns the bit at (i,j). Out-of-range indices are undefined.
func (m *BitMatrix) Get(i, j int) int {
	w := j >> wordShift
	bit := uint(j & wordMask)
	return int((m.data[i][w] >> bit) & 1)
}

// Set writes the bit at (i,j) to v (0 or 1). Out-of-range indices are
// undefined.
func (m *BitMatrix) Set(i, j, v int) {
	w := j >> wordShift
	bit := uint(j & wordMask)
	if v != 0 {
		m.data[i][w] |= 1 << bit
	} else {
		m.data[i][w] &^= 1 << bit
	}
}

// Clone returns a deep copy of m, independent of further mutation.
// Solve is destructive (row/column exchanges, in-place XOR), so
// callers that need to try several indeterminate assignments against
// the same coefficient matrix must Solve a Clone each time.
func (m *BitMatrix) Clone() *BitMatrix {
	data := make([][]uint32, m.rows)
	for i, row := range m.data {
		data[i] = append([]uint32(nil), row...)
	}
	return &BitMatrix{rows: m.rows, cols: m.cols, wordsPerRow: m.wordsPerRow, data: data}
}

// Transpose returns a new cols×rows matrix with rows and columns
// swapped.
func (m *BitMatrix) Transpose() *BitMatrix {
	t, _ := NewBitMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.Get(i, j) != 0 {
				t.Set(j, i, 1)
			}
		}
	}
	return t
}

// ExchangeRows swaps the bits of rows a and b in columns
// [firstCol, cols), word-wise, with a mask applied to the partially
// touched leading word.
func (m *BitMatrix) ExchangeRows(a, b, firstCol int) {
	if a == b {
		return
	}
	startWord := firstCol >> wordShift
	leadMask := ^uint32(0) << uint(firstCol&wordMask)

	ra, rb := m.data[a], m.data[b]
	diff := (ra[startWord] ^ rb[startWord]) & leadMask
	ra[startWord] ^= diff
	rb[startWord] ^= diff

	for w := startWord + 1; w < m.wordsPerRow; w++ {
		ra[w], rb[w] = rb[w], ra[w]
	}
}

// ExchangeColumns swaps the bits of columns a and b across all rows.
func (m *BitMatrix) ExchangeColumns(a, b int) {
	if a == b {
		return
	}
	for i := 0; i < m.rows; i++ {
		va, vb := m.Get(i, a), m.Get(i, b)
		m.Set(i, a, vb)
		m.Set(i, b, va)
	}
}

// ReduceRow XORs target with pivot, word-wise from word
// floor(firstCol/w) onward, but only if bit (target, firstCol) is 1;
// otherwise it is a no-op.
func (m *BitMatrix) ReduceRow(pivot, target, firstCol int) {
	if m.Get(target, firstCol) == 0 {
		return
	}
	startWord := firstCol >> wordShift
	rp, rt := m.data[pivot], m.data[target]
	for w := startWord; w < m.wordsPerRow; w++ {
		rt[w] ^= rp[w]
	}
}

// Solve performs Gauss-Jordan reduction with full column pivoting over
// columns [0, cols-1) (the last column is the augmented vector and is
// never permuted), then back-substitutes using indeterminates as the
// values for free variables beyond rank, see spec.md §4.7.
func (m *BitMatrix) Solve(indeterminates []int) ([]int, error) {
	if m.rows == 0 || m.cols < 2 {
		return nil, ErrInvalidArgument
	}
	c := m.cols
	aug := c - 1

	perm := make([]int, aug)
	for i := range perm {
		perm[i] = i
	}

	rCursor, jCursor := 0, 0
	for rCursor < m.rows && jCursor < aug {
		pi, pj := -1, -1
		for i := rCursor; i < m.rows && pi < 0; i++ {
			for j := jCursor; j < aug; j++ {
				if m.Get(i, j) == 1 {
					pi, pj = i, j
					break
				}
			}
		}
		if pi < 0 {
			break
		}
		m.ExchangeRows(pi, rCursor, jCursor)
		if pj != jCursor {
			m.ExchangeColumns(pj, jCursor)
			perm[pj], perm[jCursor] = perm[jCursor], perm[pj]
		}
		for i := rCursor + 1; i < m.rows; i++ {
			m.ReduceRow(rCursor, i, jCursor)
		}
		rCursor++
		jCursor++
	}
	rank := rCursor

	for i := rank; i < m.rows; i++ {
		if m.Get(i, aug) == 1 {
			return nil, ErrInconsistent
		}
	}

	res := make([]int, aug)
	for i := rank; i < aug; i++ {
		if k := i - rank; k < len(indeterminates) {
			res[i] = indeterminates[k]
		} else {
			res[i] = 0
		}
	}
	for i := rank - 1; i >= 0; i-- {
		v := m.Get(i, aug)
		for j := i + 1; j < aug; j++ {
			if m.Get(i, j) == 1 && res[j] == 1 {
				v ^= 1
			}
		}
		res[i] = v
	}

	out := make([]int, aug)
	for k, p := range perm {
		out[p] = res[k]
	}
	return out, nil
}

// String serializes the matrix as bracketed rows of '0'/'1' characters
// separated by newlines, e.g. "[0010]\n[1100]\n[0011]\n".
func (m *BitMatrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if m.Get(i, j) == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte(']')
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseBitMatrix decodes the textual form produced by String. Empty
// lines are ignored; every non-empty row must be bracketed, share the
// same length, and contain only '0'/'1' characters; violations are
// reported as ErrParseError.
func ParseBitMatrix(s string) (*BitMatrix, error) {
	lines := strings.Split(s, "\n")
	rows := make([]string, 0, len(lines))
	offsets := make([]int, 0, len(lines))
	pos := 0
	for _, l := range lines {
		if l != "" {
			rows = append(rows, l)
			offsets = append(offsets, pos)
		}
		pos += len(l) + 1 // +1 for the stripped '\n'
	}
	if len(rows) == 0 {
		return nil, parseErrorAt(0, "bit matrix has no rows")
	}
	width := -1
	bits := make([][]byte, len(rows))
	for i, l := range rows {
		if !strings.HasPrefix(l, "[") || !strings.HasSuffix(l, "]") {
			return nil, parseErrorAt(offsets[i], "bit matrix row missing bracket wrapper")
		}
		inner := l[1 : len(l)-1]
		if width < 0 {
			width = len(inner)
		} else if len(inner) != width {
			return nil, parseErrorAt(offsets[i], "bit matrix row width mismatch")
		}
		for k := 0; k < len(inner); k++ {
			if inner[k] != '0' && inner[k] != '1' {
				return nil, parseErrorAt(offsets[i]+1+k, "bit matrix entry must be '0' or '1'")
			}
		}
		bits[i] = []byte(inner)
	}
	m, err := NewBitMatrix(len(rows), width)
	if err != nil {
		return nil, err
	}
	for i, row := range bits {
		for j, ch := range row {
			if ch == '1' {
				m.Set(i, j, 1)
			}
		}
	}
	return m, nil
}
