// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tt_test

import (
	"testing"

	"shardchess.dev/x/core/pkg/eval"
	"shardchess.dev/x/core/pkg/move"
	"shardchess.dev/x/core/pkg/square"
	"shardchess.dev/x/core/pkg/tt"
	"shardchess.dev/x/core/pkg/zobrist"
)

// TestStoreProbeRoundTrip checks that a stored entry comes back
// unchanged through Probe, keyed on the exact hash.
func TestStoreProbeRoundTrip(t *testing.T) {
	table := tt.NewTable(1)

	hash := zobrist.Key(0x1234567890ABCDEF)
	best := move.New(square.E2, square.E4, 0, false)

	table.Store(tt.Entry{
		Hash:  hash,
		Move:  best,
		Value: tt.Eval(100),
		Type:  tt.Exact,
		Depth: 6,
	})

	entry, ok := table.Probe(hash)
	if !ok {
		t.Fatal("probe missed an entry that was just stored")
	}
	if entry.Move != best || entry.Depth != 6 || entry.Type != tt.Exact {
		t.Errorf("probe returned %+v, want the stored entry", entry)
	}
}

// TestProbeMissOnCollision checks that probing a hash that collides
// into a slot occupied by a different position's entry reports a
// miss rather than handing back the wrong position's data.
func TestProbeMissOnCollision(t *testing.T) {
	table := tt.NewTable(1)

	table.Store(tt.Entry{Hash: 1, Type: tt.Exact, Depth: 4})

	// the slot index keeps only the low bits of the hash, so a hash that
	// differs from 1 only in bit 40 lands in the same slot
	_, ok := table.Probe(1 | 1<<40)
	if ok {
		t.Error("probe reported a hit for a hash that was never stored")
	}
}

// TestReplacementPrefersDeeperSearch checks the quality-based
// replacement policy: a shallower entry stored later in the same epoch
// for the same hash does not overwrite a deeper one already in the slot.
func TestReplacementPrefersDeeperSearch(t *testing.T) {
	table := tt.NewTable(1)
	hash := zobrist.Key(42)

	table.Store(tt.Entry{Hash: hash, Type: tt.Exact, Depth: 10, Value: tt.Eval(5)})
	table.Store(tt.Entry{Hash: hash, Type: tt.Exact, Depth: 1, Value: tt.Eval(999)})

	entry, ok := table.Probe(hash)
	if !ok {
		t.Fatal("probe missed a stored entry")
	}
	if entry.Depth != 10 || entry.Value != tt.Eval(5) {
		t.Errorf("shallow store overwrote the deeper entry: got %+v", entry)
	}
}

// TestNextEpochAgesOutReplacementPreference checks that after
// NextEpoch, a shallower entry from the new epoch can replace a
// deeper one left over from an old epoch. Quality is epoch + depth/3,
// so each epoch of age weighs as much as three plies of depth: the old
// depth-6 entry scores 2 and the fresh depth-1 entry 3 epochs later 3.
func TestNextEpochAgesOutReplacementPreference(t *testing.T) {
	table := tt.NewTable(1)
	hash := zobrist.Key(7)

	table.Store(tt.Entry{Hash: hash, Type: tt.Exact, Depth: 6, Value: tt.Eval(1)})
	table.NextEpoch()
	table.NextEpoch()
	table.NextEpoch()
	table.Store(tt.Entry{Hash: hash, Type: tt.Exact, Depth: 1, Value: tt.Eval(2)})

	entry, _ := table.Probe(hash)
	if entry.Value != tt.Eval(2) {
		t.Errorf("fresh-epoch entry should win over a stale deep one, got %+v", entry)
	}
}

// TestClearRemovesAllEntries checks Clear empties every slot so a
// probe after it reports a miss regardless of what was stored before.
func TestClearRemovesAllEntries(t *testing.T) {
	table := tt.NewTable(1)
	table.Store(tt.Entry{Hash: 99, Type: tt.Exact, Depth: 5})

	table.Clear()

	_, ok := table.Probe(99)
	if ok {
		t.Error("probe hit an entry after Clear")
	}
}

// TestEvalRoundTripsMateScores checks that EvalFrom/Eval.Eval correctly
// rebase a mate score between "from root" and "from this node" so a
// stored mate score recovered at a different depth scores the same
// absolute mate distance it was stored with.
func TestEvalRoundTripsMateScores(t *testing.T) {
	stored := tt.EvalFrom(eval.MatedIn(3), 5) // mate found 5 ply into the stored search
	recovered := stored.Eval(2)               // reused 2 ply into a different search

	want := eval.MatedIn(3) - eval.Eval(5) + eval.Eval(2)
	if recovered != want {
		t.Errorf("rebased mate score = %d, want %d", recovered, want)
	}
}
