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
	"errors"
	"testing"

	"github.com/bfix/qsieve/math"
)

func TestBuildFactorBaseProperties(t *testing.T) {
	fb, err := BuildFactorBase(math.NewInt(5959))
	if err != nil {
		t.Fatalf("BuildFactorBase: %v", err)
	}
	want := targetFactorBaseSize(math.NewInt(5959))
	if fb.Len() != want {
		t.Fatalf("len(F) = %d, want %d", fb.Len(), want)
	}
	for i, p := range fb.Primes {
		if !math.IsPrimeTrial(p) && !p.Equals(math.TWO) {
			t.Errorf("F[%d] = %s is not prime", i, p)
		}
		if i > 0 && fb.Primes[i-1].Cmp(p) >= 0 {
			t.Errorf("F not strictly increasing at index %d: %s >= %s", i, fb.Primes[i-1], p)
		}
	}
	if !fb.Primes[0].Equals(math.TWO) {
		t.Fatalf("F[0] = %s, want 2 (spec.md §9 p=2 inclusion)", fb.Primes[0])
	}
}

func TestFactorBaseSerializationRoundTrip(t *testing.T) {
	fb, err := BuildFactorBase(math.NewInt(15))
	if err != nil {
		t.Fatalf("BuildFactorBase: %v", err)
	}
	s := fb.String()
	fb2, err := ParseFactorBase(s)
	if err != nil {
		t.Fatalf("ParseFactorBase: %v", err)
	}
	if fb2.Len() != fb.Len() {
		t.Fatalf("round-trip length mismatch: %d vs %d", fb2.Len(), fb.Len())
	}
	for i := range fb.Primes {
		if !fb.Primes[i].Equals(fb2.Primes[i]) {
			t.Fatalf("round-trip mismatch at %d: %s vs %s", i, fb.Primes[i], fb2.Primes[i])
		}
	}
}

func TestParseFactorBaseEmpty(t *testing.T) {
	fb, err := ParseFactorBase("[]")
	if err != nil {
		t.Fatalf("ParseFactorBase([]): %v", err)
	}
	if fb.Len() != 0 {
		t.Fatalf("len = %d, want 0", fb.Len())
	}
}

func TestParseFactorBaseMalformed(t *testing.T) {
	cases := []string{"", "[1,2", "1,2]", "[1,a]"}
	for _, c := range cases {
		if _, err := ParseFactorBase(c); !errors.Is(err, ErrParseError) {
			t.Errorf("ParseFactorBase(%q): got %v, want ErrParseError", c, err)
		}
	}
}
