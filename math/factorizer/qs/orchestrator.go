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
	"context"
	"runtime"

	"github.com/bfix/qsieve/concurrent"
	"github.com/bfix/qsieve/logger"
	"github.com/bfix/qsieve/math"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the sieve worker-pool size used when an
// Orchestrator caller does not override it.
var DefaultWorkers = runtime.NumCPU()

// Orchestrator sequences the factorization of N end to end: build the
// factor base, partition the sieve interval into shards, sieve shards
// in parallel, then hand the surviving relations to the combiner, see
// spec.md §4.9.
type Orchestrator struct {
	N           *math.Int
	Workers     int
	ShardLength int
	Counters    *Counters
}

// NewOrchestrator constructs an Orchestrator for n. A non-positive
// workers falls back to DefaultWorkers.
func NewOrchestrator(n *math.Int, workers, shardLength int) *Orchestrator {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Orchestrator{
		N:           n,
		Workers:     workers,
		ShardLength: shardLength,
		Counters:    NewCounters(),
	}
}

// shardResult is the unit of data flowing back from a sieve worker.
type shardResult struct {
	index  int
	smooth *SieveArray
}

// sieveDispatch implements concurrent.Dispatchable[*Shard, shardResult]
// for the sieve phase: each worker sieves one shard at a time; Eval
// accumulates the surviving relations and signals completion once
// every shard handed to Process has reported back.
type sieveDispatch struct {
	n      *math.Int
	fb     *FactorBase
	total  int
	got    int
	smooth *SieveArray
	done   chan struct{}
}

func newSieveDispatch(n *math.Int, fb *FactorBase, total int) *sieveDispatch {
	return &sieveDispatch{
		n:      n,
		fb:     fb,
		total:  total,
		smooth: NewSieveArray(),
		done:   make(chan struct{}),
	}
}

// Worker sieves shards from taskCh until it is closed or ctx is done.
func (d *sieveDispatch) Worker(ctx context.Context, n int, taskCh chan *Shard, resCh chan shardResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case shard, ok := <-taskCh:
			if !ok {
				return
			}
			out := SieveShard(d.n, d.fb, shard)
			select {
			case resCh <- shardResult{index: shard.Index, smooth: out}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Eval merges one shard's surviving relations and reports whether
// every expected shard has now been accounted for.
func (d *sieveDispatch) Eval(r shardResult) bool {
	d.got++
	d.smooth.Concat(r.smooth)
	if d.got >= d.total {
		close(d.done)
		return true
	}
	return false
}

// Run executes the full pipeline and returns a non-trivial factor
// pair of o.N, or an error per spec.md §7.
func (o *Orchestrator) Run(ctx context.Context) (f1, f2 *math.Int, err error) {
	fb, err := BuildFactorBase(o.N)
	if err != nil {
		return nil, nil, err
	}
	logger.Printf(logger.INFO, "[qs] factor base size %d\n", fb.Len())

	ib := NewInputBuilder(o.N, fb, o.ShardLength)
	shards, err := ib.BuildShards()
	if err != nil {
		return nil, nil, err
	}
	logger.Printf(logger.INFO, "[qs] sieve interval split into %d shards\n", len(shards))

	if len(shards) == 0 {
		return nil, nil, ErrFactorizationFailed
	}

	disp := newSieveDispatch(o.N, fb, len(shards))
	d := concurrent.NewDispatcher[*Shard, shardResult](ctx, o.Workers, disp)

	g, gctx := errgroup.WithContext(ctx)
	for _, sh := range shards {
		sh := sh
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if !d.Process(sh) {
				return errors.WithMessage(ErrIOFailure, "dispatcher closed before all shards were submitted")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	select {
	case <-disp.done:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
	logger.Printf(logger.INFO, "[qs] sieve phase yielded %d smooth relations\n", disp.smooth.Len())

	f1, f2, err = Combine(o.N, fb, disp.smooth, o.Counters)
	if err != nil {
		logger.Printf(logger.ERROR, "[qs] combiner failed: %v\n", err)
		return nil, nil, err
	}
	return f1, f2, nil
}
