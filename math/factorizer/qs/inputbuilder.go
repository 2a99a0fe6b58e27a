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
	"bufio"
	"fmt"
	"io"

	"github.com/bfix/qsieve/math"
	"github.com/pkg/errors"
)

// DefaultShardLength is the shard size L used unless an Orchestrator
// caller overrides it. Spec.md §3 suggests 10 for test sizes.
const DefaultShardLength = 10

// Shard is a fixed-length (except possibly the last) sub-interval of
// the full sieve interval, processable independently of every other
// shard.
type Shard struct {
	Index int
	Data  *SieveArray
}

// InputBuilder computes the sieve-interval size and partitions it into
// shards centered on floor(sqrt(N)), see spec.md §4.5.
type InputBuilder struct {
	N           *math.Int
	FB          *FactorBase
	ShardLength int
}

// NewInputBuilder constructs an InputBuilder for N with the given
// factor base and shard length. A non-positive shardLength falls back
// to DefaultShardLength.
func NewInputBuilder(n *math.Int, fb *FactorBase, shardLength int) *InputBuilder {
	if shardLength <= 0 {
		shardLength = DefaultShardLength
	}
	return &InputBuilder{N: n, FB: fb, ShardLength: shardLength}
}

// FullSize returns M = B³, the length of the full sieve interval.
func (ib *InputBuilder) FullSize() *math.Int {
	b := math.NewInt(int64(ib.FB.Len()))
	return b.Mul(b).Mul(b)
}

// BuildShards computes start = floor(sqrt(N)) - M/2 and emits the full
// interval [start, start+M) grouped into shards of ShardLength
// consecutive entries, with a final short shard if M mod L != 0.
func (ib *InputBuilder) BuildShards() ([]*Shard, error) {
	sqrtN, err := ib.N.Sqrt()
	if err != nil {
		return nil, errors.Wrap(err, "computing floor(sqrt(N))")
	}
	m := ib.FullSize()
	half := m.Div(math.TWO)
	start := sqrtN.Sub(half)

	mInt := m.Int64()
	shards := make([]*Shard, 0, (mInt+int64(ib.ShardLength)-1)/int64(ib.ShardLength))

	var cur *SieveArray
	for k := int64(0); k < mInt; k++ {
		if k%int64(ib.ShardLength) == 0 {
			if cur != nil {
				shards = append(shards, &Shard{Index: len(shards), Data: cur})
			}
			cur = NewSieveArray()
		}
		x := start.Add(math.NewInt(k))
		cur.Append(x, ib.N)
	}
	if cur != nil {
		shards = append(shards, &Shard{Index: len(shards), Data: cur})
	}
	return shards, nil
}

// WriteShards writes one shard per line (the SieveArray serialization
// of spec.md §4.4) to sink, in the format spec.md §6 describes for the
// shard file. Lines are independent and may be reordered without
// changing correctness. counters may be nil; when set, a failed write
// bumps its unable_to_output tally before the error is returned.
func (ib *InputBuilder) WriteShards(sink io.Writer, counters *Counters) error {
	shards, err := ib.BuildShards()
	if err != nil {
		return err
	}
	for _, sh := range shards {
		if _, err := fmt.Fprintln(sink, sh.Data.String()); err != nil {
			if counters != nil {
				counters.Inc(CounterUnableToOutput)
			}
			return errors.Wrapf(ErrIOFailure, "writing shard %d: %v", sh.Index, err)
		}
	}
	return nil
}

// ReadShards is the inverse of WriteShards: it parses one SieveArray
// per line. A line that fails to parse is skipped rather than aborting
// the whole read, incrementing counters's invalid_sieve_array tally
// when counters is non-nil, per spec.md §4.9's cooperative-skip
// cancellation policy.
func ReadShards(source io.Reader, counters *Counters) ([]*Shard, error) {
	scanner := bufio.NewScanner(source)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	shards := make([]*Shard, 0)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		sa, err := ParseSieveArray(line)
		if err != nil {
			if counters != nil {
				counters.Inc(CounterInvalidSieveArray)
			}
			continue
		}
		shards = append(shards, &Shard{Index: len(shards), Data: sa})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(ErrIOFailure, "reading shards: %v", err)
	}
	return shards, nil
}
