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
)

func TestSymbolExamples(t *testing.T) {
	cases := []struct {
		a, p int64
		want int
	}{
		{5, 7, -1},
		{2, 7, 1},
		{14, 7, 0},
	}
	for _, c := range cases {
		got, err := Symbol(math.NewInt(c.a), math.NewInt(c.p))
		if err != nil {
			t.Fatalf("Symbol(%d,%d): %v", c.a, c.p, err)
		}
		if got != c.want {
			t.Errorf("Symbol(%d,%d) = %d, want %d", c.a, c.p, got, c.want)
		}
	}
}

func TestSymbolRange(t *testing.T) {
	p := math.NewInt(13)
	for a := int64(0); a < 13; a++ {
		got, err := Symbol(math.NewInt(a), p)
		if err != nil {
			t.Fatalf("Symbol(%d,13): %v", a, err)
		}
		if got != -1 && got != 0 && got != 1 {
			t.Fatalf("Symbol(%d,13) = %d, out of {-1,0,1}", a, got)
		}
		if (got == 0) != (a%13 == 0) {
			t.Fatalf("Symbol(%d,13) = %d, but divisibility says zero=%v", a, got, a%13 == 0)
		}
	}
}
