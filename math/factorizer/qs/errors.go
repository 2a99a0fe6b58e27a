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

// Package qs implements the Quadratic Sieve factorization engine: a
// factor base, a sieve, a GF(2) linear-algebra solver and the
// congruence-of-squares combiner that ties them together.
package qs

import (
	"github.com/pkg/errors"

	goserrors "github.com/bfix/qsieve/errors"
)

// Error kinds, see spec.md §7.
var (
	// ErrInvalidArgument is returned for out-of-domain input (zero-size
	// matrix, a matrix without an augmented column to solve, an empty
	// or too-small N on the command line). A negative Sqrt argument is
	// reported by the math package's own ErrNegativeArgument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrParseError is returned for malformed serialized input (factor
	// base, sieve array, bit matrix).
	ErrParseError = errors.New("parse error")

	// ErrArithmeticInconsistency is returned when a Legendre-symbol
	// computation yields a residue outside {1, p-1}, indicating p is
	// not prime or the input was misused.
	ErrArithmeticInconsistency = errors.New("arithmetic inconsistency")

	// ErrInconsistent is returned by BitMatrix.Solve when the augmented
	// system has strictly higher rank than the coefficient system.
	ErrInconsistent = errors.New("inconsistent linear system")

	// ErrFactorizationFailed is returned when the combiner exhausts its
	// mask budget without finding a non-trivial GCD.
	ErrFactorizationFailed = errors.New("factorization failed")

	// ErrIOFailure is returned when shard read/write or result
	// emission fails.
	ErrIOFailure = errors.New("I/O failure")
)

// parseErrorAt wraps ErrParseError with the byte offset of the
// malformed input and a short description, see spec.md §7 ("ParseError
// carries offset where known").
func parseErrorAt(offset int, what string) error {
	return goserrors.New(ErrParseError, "%s at offset %d", what, offset)
}
