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
	stdmath "math"
	"math/big"
	"strconv"
	"strings"

	"github.com/bfix/qsieve/math"
)

// FactorBase is the ordered sequence of primes p (plus the
// conventional p=2) with Legendre(N/p) in {0,1}, see spec.md §3/§4.3.
type FactorBase struct {
	Primes []*math.Int
}

// targetFactorBaseSize computes B = ceil(exp(sqrt(ln(N)*ln(ln(N))))^(sqrt(2)/4)).
func targetFactorBaseSize(n *math.Int) int {
	lnN := naturalLog(n)
	lnLnN := stdmath.Log(lnN)
	if lnLnN < 1e-9 {
		lnLnN = 1e-9
	}
	exponent := stdmath.Sqrt(lnN * lnLnN)
	base := stdmath.Exp(exponent)
	b := stdmath.Pow(base, stdmath.Sqrt2/4)
	size := int(stdmath.Ceil(b))
	if size < 2 {
		size = 2
	}
	return size
}

// naturalLog returns ln(n) for a positive arbitrary-precision integer
// by splitting n into mantissa*2^exp via big.Float and summing the
// logarithm of each part, which stays accurate well beyond the range
// of a direct float64 conversion.
func naturalLog(n *math.Int) float64 {
	f := new(big.Float).SetPrec(128).SetInt(n.BigInt())
	mant := new(big.Float).SetPrec(128)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()
	return stdmath.Log(m) + float64(exp)*stdmath.Ln2
}

// BuildFactorBase constructs the factor base for N: p=2 is always
// included, followed by the smallest odd primes p with
// Legendre(N/p) in {0,1} until the target size is reached.
func BuildFactorBase(n *math.Int) (*FactorBase, error) {
	size := targetFactorBaseSize(n)
	primes := make([]*math.Int, 0, size)
	primes = append(primes, math.TWO)

	p := math.THREE
	for len(primes) < size {
		sym, err := Symbol(n, p)
		if err != nil {
			return nil, err
		}
		if sym == 0 || sym == 1 {
			primes = append(primes, p)
		}
		p = p.NextProbablePrime(20)
	}
	return &FactorBase{Primes: primes}, nil
}

// Len returns the number of primes in the factor base.
func (fb *FactorBase) Len() int {
	return len(fb.Primes)
}

// String serializes the factor base as "[p0,p1,...]".
func (fb *FactorBase) String() string {
	parts := make([]string, len(fb.Primes))
	for i, p := range fb.Primes {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// ParseFactorBase deserializes the "[p0,p1,...]" form produced by
// String. A missing bracket wrapper is reported as ErrParseError.
func ParseFactorBase(s string) (*FactorBase, error) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, parseErrorAt(0, "factor base missing bracket wrapper")
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return &FactorBase{Primes: []*math.Int{}}, nil
	}
	fields := strings.Split(inner, ",")
	primes := make([]*math.Int, len(fields))
	pos := 1 // offset of inner's start within s
	for i, f := range fields {
		if _, err := strconv.ParseInt(f, 10, 64); err != nil {
			// field may exceed int64; still validate it's all digits
			if !isDigits(f) {
				return nil, parseErrorAt(pos, "factor base entry must be a decimal prime")
			}
		}
		primes[i] = math.NewIntFromString(f)
		pos += len(f) + 1 // +1 for the separating comma
	}
	return &FactorBase{Primes: primes}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
