// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package search

import (
	"testing"

	"shardchess.dev/x/core/pkg/board"
	"shardchess.dev/x/core/pkg/eval"
	"shardchess.dev/x/core/pkg/move"
)

// newTestContext builds a Context ready to search/quiescence directly,
// bypassing Search's iterative-deepening setup.
func newTestContext(fen string) *Context {
	b, err := board.New(fen)
	if err != nil {
		panic(err) // test fixtures are hardcoded, never malformed
	}
	c := NewContext(b, 1, 1)
	c.stopped = false
	return c
}

// TestQuiescenceStandPatInQuietPosition checks spec §8 invariant 5 in
// its simplest form: in a position with no captures available at all,
// quiescence has nothing to search and its return value is exactly the
// static evaluation (the stand-pat score), never something manufactured
// by a capture search that shouldn't have run.
func TestQuiescenceStandPatInQuietPosition(t *testing.T) {
	// a locked pawn chain position: no captures exist for either side
	c := newTestContext("4k3/8/8/3p4/3P4/8/8/4K3 w - - 0 1")
	c.qsRoot = 0

	want := c.evaluate()
	got := c.quiescence(0, -eval.Inf, eval.Inf)

	if got != want {
		t.Errorf("quiescence() = %d in a position with no captures, want the stand-pat eval %d", got, want)
	}
}

// TestQuiescenceStandPatCutsWithinWindow checks that when the stand-pat
// score already beats beta, quiescence cuts fail-hard: the returned
// value is beta itself, never the (possibly much larger) stand-pat
// score, so it can't escape the [alpha, beta] window on either side.
func TestQuiescenceStandPatCutsWithinWindow(t *testing.T) {
	c := newTestContext(kiwipeteFEN)
	c.qsRoot = 0

	standPat := c.evaluate()
	beta := standPat - 50 // guarantee a cut: stand-pat already beats this beta

	got := c.quiescence(0, -eval.Inf, beta)
	if got != beta {
		t.Errorf("quiescence() = %d on a stand-pat cut, want exactly beta (%d)", got, beta)
	}
}

// TestQuiescenceNeverWorsensStandPat checks that quiescence's returned
// score from the side to move's perspective is never worse than simply
// standing pat: every capture it explores is only taken if it raises
// alpha, so the search result is monotune non-decreasing versus the
// static eval.
func TestQuiescenceNeverWorsensStandPat(t *testing.T) {
	c := newTestContext(kiwipeteFEN)
	c.qsRoot = 0

	standPat := c.evaluate()
	got := c.quiescence(0, -eval.Inf, eval.Inf)

	if got < standPat {
		t.Errorf("quiescence() = %d, worse than standing pat (%d)", got, standPat)
	}
}

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// TestOrderMovesIgnoresIllegalTTMove checks spec §8 invariant 6 at the
// move-ordering layer: a "tt move" that isn't actually present in the
// legal move list (as would happen after a hash collision) must never
// match any candidate during scoring, and ordering must complete
// without special-casing it — the search only ever "follows" a tt move
// by recognizing it among moves the generator already produced.
func TestOrderMovesIgnoresIllegalTTMove(t *testing.T) {
	b, err := board.New(startFEN)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	c := NewContext(b, 1, 1)

	moves := b.GenerateMoves()

	// construct an outright illegal move (moving a piece that isn't even
	// on the board) to simulate a stale/garbage tt entry.
	illegal := move.New(63, 0, 0, false)

	for _, m := range moves {
		if m == illegal {
			t.Fatal("test setup: illegal move collided with a real legal move")
		}
	}

	list := c.orderMoves(moves, illegal, 0)
	if list.Length != len(moves) {
		t.Fatalf("orderMoves dropped or added moves: got %d, want %d", list.Length, len(moves))
	}

	for i := 0; i < list.Length; i++ {
		picked := list.PickMove(i)
		found := false
		for _, m := range moves {
			if m == picked {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("orderMoves produced a move not in the legal list: %s", picked)
		}
	}
}

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
