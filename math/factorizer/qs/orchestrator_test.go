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
	"testing"

	"github.com/bfix/qsieve/math"
)

func factorPairUnordered(t *testing.T, n int64, wantA, wantB int64) {
	t.Helper()
	orch := NewOrchestrator(math.NewInt(n), 2, DefaultShardLength)
	f1, f2, err := orch.Run(context.Background())
	if err != nil {
		t.Fatalf("Run(%d): %v", n, err)
	}
	if f1.Cmp(math.ONE) <= 0 || f1.Cmp(math.NewInt(n)) >= 0 {
		t.Fatalf("f1=%s out of range (1, %d)", f1, n)
	}
	if f2.Cmp(math.ONE) <= 0 || f2.Cmp(math.NewInt(n)) >= 0 {
		t.Fatalf("f2=%s out of range (1, %d)", f2, n)
	}
	if !f1.Mul(f2).Equals(math.NewInt(n)) {
		t.Fatalf("f1*f2 = %s, want %d", f1.Mul(f2), n)
	}
	got := map[int64]bool{f1.Int64(): true, f2.Int64(): true}
	if !got[wantA] || !got[wantB] {
		t.Fatalf("factor pair = {%s,%s}, want {%d,%d}", f1, f2, wantA, wantB)
	}
}

func TestOrchestratorFactor15(t *testing.T) {
	factorPairUnordered(t, 15, 3, 5)
}

func TestOrchestratorFactor5959(t *testing.T) {
	factorPairUnordered(t, 5959, 59, 101)
}

func TestOrchestratorCountersWired(t *testing.T) {
	orch := NewOrchestrator(math.NewInt(15), 2, DefaultShardLength)
	if orch.Counters == nil {
		t.Fatal("Counters not initialized by NewOrchestrator")
	}
	if _, _, err := orch.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
