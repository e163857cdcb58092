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

package board_test

import (
	"strings"
	"testing"

	"shardchess.dev/x/core/pkg/board"
	"shardchess.dev/x/core/pkg/board/mailbox"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
	"shardchess.dev/x/core/pkg/zobrist"
)

// snapshot captures every part of a Board the core spec's make/unmake
// involution property (§8.1) actually promises is restored: the
// bitboards, the mailbox, rights, en passant, clocks, and the hash.
// Board.History is deliberately excluded: it is scratch bookkeeping
// make/unmake write through, not board state the spec asks to be
// bit-identical afterwards.
type snapshot struct {
	hash     zobrist.Key
	position mailbox.Board
	pieceBBs [piece.TypeN]uint64
	colorBBs [piece.ColorN]uint64
	kings    [piece.ColorN]square.Square

	sideToMove piece.Color
	epTarget   square.Square
	rights     int

	plys      int
	fullMoves int
	drawClock int
}

func mustBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.New(fen)
	if err != nil {
		t.Fatalf("board.New(%q): %v", fen, err)
	}
	return b
}

func mustPlay(t *testing.T, b *board.Board, coords string) {
	t.Helper()
	if _, err := b.MakeMoveByCoords(coords); err != nil {
		t.Fatalf("MakeMoveByCoords(%q): %v", coords, err)
	}
}

func snapshotOf(b *board.Board) snapshot {
	s := snapshot{
		hash:       b.Hash,
		position:   b.Position,
		sideToMove: b.SideToMove,
		epTarget:   b.EnPassantTarget,
		rights:     int(b.CastlingRights),
		plys:       b.Plys,
		fullMoves:  b.FullMoves,
		drawClock:  b.DrawClock,
		kings:      b.Kings,
	}
	for i := range s.pieceBBs {
		s.pieceBBs[i] = uint64(b.PieceBBs[i])
	}
	for i := range s.colorBBs {
		s.colorBBs[i] = uint64(b.ColorBBs[i])
	}
	return s
}

// TestMakeUnmakeInvolution plays every legal move from a handful of
// tactically dense positions one ply deep and checks that unmaking it
// restores the board bit-for-bit (spec §8 invariant 1).
func TestMakeUnmakeInvolution(t *testing.T) {
	fens := []string{
		startFEN,
		kiwipeteFEN,
		endgameFEN,
		castlingFEN,
		promotionFEN,
		"8/8/8/1Ppp3r/1K3p1k/8/4P1P1/1R6 w - c6 0 3",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b := mustBoard(t, fen)
			for _, m := range b.GenerateMoves() {
				before := snapshotOf(b)

				b.MakeMove(m)
				b.UnmakeMove()

				after := snapshotOf(b)
				if before != after {
					t.Fatalf("move %s: board not restored\nbefore: %+v\nafter:  %+v", m, before, after)
				}
			}
		})
	}
}

// TestMakeUnmakeInvolutionDeep recurses to a few plies, make/unmaking
// at every node, to catch state that only diverges once it has been
// pushed and popped through several nested plies (e.g. castling rights
// or the draw clock interacting with history).
func TestMakeUnmakeInvolutionDeep(t *testing.T) {
	var walk func(b *board.Board, depth int)
	walk = func(b *board.Board, depth int) {
		if depth == 0 {
			return
		}
		for _, m := range b.GenerateMoves() {
			before := snapshotOf(b)

			b.MakeMove(m)
			walk(b, depth-1)
			b.UnmakeMove()

			after := snapshotOf(b)
			if before != after {
				t.Fatalf("move %s at depth %d: board not restored", m, depth)
			}
		}
	}

	for _, fen := range []string{startFEN, kiwipeteFEN, castlingFEN} {
		t.Run(fen, func(t *testing.T) {
			walk(mustBoard(t, fen), 3)
		})
	}
}

// TestHashIsPureFunctionOfState checks spec §8 invariant 2: two boards
// reached by different move orders but landing on identical piece
// placement, side to move, castling rights, and EP availability hash
// the same.
func TestHashIsPureFunctionOfState(t *testing.T) {
	a := mustBoard(t, startFEN)
	mustPlay(t, a, "e2e4")
	mustPlay(t, a, "e7e5")
	mustPlay(t, a, "g1f3")
	mustPlay(t, a, "b8c6")

	b := mustBoard(t, startFEN)
	mustPlay(t, b, "g1f3")
	mustPlay(t, b, "b8c6")
	mustPlay(t, b, "e2e4")
	mustPlay(t, b, "e7e5")

	// the halfmove clocks differ (the last move is a knight move in one
	// order and a pawn move in the other), so only the placement, side
	// to move, castling and en passant fields of the FENs are compared
	posA := strings.Join(strings.Fields(a.FEN())[:4], " ")
	posB := strings.Join(strings.Fields(b.FEN())[:4], " ")
	if posA != posB {
		t.Fatalf("transposed move orders reached different positions: %q vs %q", posA, posB)
	}
	if a.Hash != b.Hash {
		t.Errorf("transposed positions hashed differently: %X vs %X", uint64(a.Hash), uint64(b.Hash))
	}
}
