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
	"strings"

	"github.com/bfix/qsieve/math"
)

// SieveArray is a pair of parallel sequences (x, x²-N), see spec.md
// §3. Ints and Evals always have the same length and are never
// reordered independently of each other.
type SieveArray struct {
	Ints  []*math.Int
	Evals []*math.Int
}

// NewSieveArray allocates an empty SieveArray.
func NewSieveArray() *SieveArray {
	return &SieveArray{
		Ints:  make([]*math.Int, 0),
		Evals: make([]*math.Int, 0),
	}
}

// Eval computes x² - n.
func Eval(x, n *math.Int) *math.Int {
	return x.Mul(x).Sub(n)
}

// Append adds one (x, x²-n) pair to the array.
func (s *SieveArray) Append(x, n *math.Int) {
	s.Ints = append(s.Ints, x)
	s.Evals = append(s.Evals, Eval(x, n))
}

// AppendPair adds an already-evaluated (x, y) pair, used when
// concatenating relations surviving the sieve.
func (s *SieveArray) AppendPair(x, y *math.Int) {
	s.Ints = append(s.Ints, x)
	s.Evals = append(s.Evals, y)
}

// Len returns the number of entries.
func (s *SieveArray) Len() int {
	return len(s.Ints)
}

// Concat appends another SieveArray's entries to this one.
func (s *SieveArray) Concat(other *SieveArray) {
	s.Ints = append(s.Ints, other.Ints...)
	s.Evals = append(s.Evals, other.Evals...)
}

// String serializes the array as "[[x0,e0],[x1,e1],...]"; the empty
// array serializes to "[]".
func (s *SieveArray) String() string {
	if len(s.Ints) == 0 {
		return "[]"
	}
	parts := make([]string, len(s.Ints))
	for i := range s.Ints {
		parts[i] = "[" + s.Ints[i].String() + "," + s.Evals[i].String() + "]"
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// ParseSieveArray decodes the "[[x0,e0],...]" form produced by
// String. The wrapper must be present (even for the empty array);
// every inner element must be a two-integer pair. Violations are
// reported as ErrParseError.
func ParseSieveArray(s string) (*SieveArray, error) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, parseErrorAt(0, "sieve array missing bracket wrapper")
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return NewSieveArray(), nil
	}
	res := NewSieveArray()
	pos := 1 // offset of inner's start within s
	for len(inner) > 0 {
		before := len(inner)
		if inner[0] != '[' {
			return nil, parseErrorAt(pos, "expected '[' starting a relation pair")
		}
		end := strings.IndexByte(inner, ']')
		if end < 0 {
			return nil, parseErrorAt(pos, "unterminated relation pair")
		}
		pair := inner[1:end]
		fields := strings.Split(pair, ",")
		if len(fields) != 2 || !isDigitsSigned(fields[0]) || !isDigitsSigned(fields[1]) {
			return nil, parseErrorAt(pos, "relation pair must be two signed integers")
		}
		res.Ints = append(res.Ints, math.NewIntFromString(fields[0]))
		res.Evals = append(res.Evals, math.NewIntFromString(fields[1]))

		rest := inner[end+1:]
		rest = strings.TrimPrefix(rest, ",")
		inner = rest
		pos += before - len(inner)
	}
	// trim to exact decoded length (defensive; len already matches by
	// construction, kept to honor the spec's "trimmed to exact length"
	// invariant explicitly).
	n := len(res.Ints)
	res.Ints = res.Ints[:n]
	res.Evals = res.Evals[:n]
	return res, nil
}

func isDigitsSigned(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	return isDigits(s)
}
