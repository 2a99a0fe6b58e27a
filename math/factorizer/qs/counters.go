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
	"sync/atomic"

	"github.com/bfix/qsieve/concurrent"
)

// CounterKind identifies one of the operator-facing error tallies of
// spec.md §6.
type CounterKind int

// Counter kinds, see spec.md §6.
const (
	CounterInvalidSieveArray CounterKind = iota
	CounterUnableToOutput
	CounterUnableToSolveSystem
	CounterCantFactor
	numCounterKinds
)

// String returns the wire name used when reporting a counter.
func (k CounterKind) String() string {
	switch k {
	case CounterInvalidSieveArray:
		return "invalid_sieve_array"
	case CounterUnableToOutput:
		return "unable_to_output"
	case CounterUnableToSolveSystem:
		return "unable_to_solve_system"
	case CounterCantFactor:
		return "cant_factor"
	default:
		return "unknown"
	}
}

// CounterEvent is broadcast to every subscriber each time a counter is
// incremented.
type CounterEvent struct {
	Kind  CounterKind
	Value int64
}

// Counters tracks the run's error tallies and fans every increment out
// to subscribers through a Signaller, so a CLI or monitoring listener
// can report progress without polling.
type Counters struct {
	values [numCounterKinds]int64
	sig    *concurrent.Signaller
}

// NewCounters allocates a zeroed counter set with its own signal bus.
func NewCounters() *Counters {
	return &Counters{sig: concurrent.NewSignaller()}
}

// Inc increments kind and notifies subscribers.
func (c *Counters) Inc(kind CounterKind) {
	v := atomic.AddInt64(&c.values[kind], 1)
	_ = c.sig.Send(CounterEvent{Kind: kind, Value: v})
}

// Get returns the current tally for kind.
func (c *Counters) Get(kind CounterKind) int64 {
	return atomic.LoadInt64(&c.values[kind])
}

// Subscribe returns a listener that receives every CounterEvent sent
// from this point on. Callers must read from it (or Close it) or they
// will stall the broadcast to every other subscriber.
func (c *Counters) Subscribe() (*concurrent.Listener, error) {
	return c.sig.Listener()
}
