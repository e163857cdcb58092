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
	"testing"

	"shardchess.dev/x/core/pkg/board"
)

const (
	startFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	endgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	castlingFEN  = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	promotionFEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// TestPerft checks the move generator and make/unmake against the
// published perft node counts for the standard seed positions.
func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		nodes int
	}{
		{"startpos", startFEN, 1, 20},
		{"startpos", startFEN, 2, 400},
		{"startpos", startFEN, 3, 8902},
		{"startpos", startFEN, 4, 197281},
		{"kiwipete", kiwipeteFEN, 1, 48},
		{"kiwipete", kiwipeteFEN, 2, 2039},
		{"endgame", endgameFEN, 2, 191},
		{"castling", castlingFEN, 2, 264},
		{"promotion", promotionFEN, 2, 1486},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := board.Perft(test.fen, test.depth)
			if err != nil {
				t.Fatalf("perft(%q, %d): %v", test.fen, test.depth, err)
			}
			if got != test.nodes {
				t.Errorf("perft(%q, %d) = %d, want %d", test.fen, test.depth, got, test.nodes)
			}
		})
	}
}

// TestEnPassantPinDiscovered checks that a pinned pawn cannot capture
// en passant when doing so would expose its own king along the rank
// the pin and the capture share, even though the pin itself runs along
// a different line than the capture.
func TestEnPassantPinDiscovered(t *testing.T) {
	b := mustBoard(t, "8/8/8/1Ppp3r/1K3p1k/8/4P1P1/1R6 w - c6 0 3")
	moves := b.GenerateMoves()
	if len(moves) != 7 {
		t.Errorf("legal move count = %d, want 7", len(moves))
	}

	for _, m := range moves {
		if m.IsEnPassant(b.EnPassantTarget) {
			t.Errorf("generated illegal en passant capture %s", m)
		}
	}
}

// TestCheckBlockMask checks that, in check from a queen on a4, Black
// has exactly the 6 non-king moves that capture or block the checker,
// and that those moves land on exactly the 3 squares between the queen
// and the king (b5, c6, d7). The block mask also holds the checker's
// own square a4, but no black piece can capture there.
func TestCheckBlockMask(t *testing.T) {
	b := mustBoard(t, "rnbqkbnr/ppp1pppp/3p4/8/2P5/8/PP1PPPPP/RNBQKBNR w KQkq - 0 1")
	mustPlay(t, b, "d1a4")

	moves := b.GenerateMoves()

	king := b.Kings[b.SideToMove]

	blockSquares := map[int]bool{}
	nonKingMoves := 0
	for _, m := range moves {
		if m.Source() == king {
			continue
		}
		nonKingMoves++
		blockSquares[int(m.Target())] = true
	}

	if nonKingMoves != 6 {
		t.Errorf("non-king legal replies = %d, want 6", nonKingMoves)
	}
	if len(blockSquares) != 3 {
		t.Errorf("non-king replies land on %d distinct squares, want 3", len(blockSquares))
	}
}

// TestKiwipeteDiscoveredCheckReply checks the published Kiwipete reply
// count after e1f1 and h3g2+.
func TestKiwipeteDiscoveredCheckReply(t *testing.T) {
	b := mustBoard(t, kiwipeteFEN)
	mustPlay(t, b, "e1f1")
	mustPlay(t, b, "h3g2")

	moves := b.GenerateMoves()
	if len(moves) != 4 {
		t.Errorf("legal reply count = %d, want 4", len(moves))
	}
}
