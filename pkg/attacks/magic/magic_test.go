package magic_test

import (
	"testing"

	"shardchess.dev/x/core/internal/util"
	"shardchess.dev/x/core/pkg/attacks"
	"shardchess.dev/x/core/pkg/attacks/magic"
	"shardchess.dev/x/core/pkg/bitboard"
	"shardchess.dev/x/core/pkg/square"
)

// TestCrossValidateSliders checks that the magic-bitboard backend agrees
// with the hyperbola quintessence backend for every square across a
// wide sample of random occupancies, including the empty and full board.
func TestCrossValidateSliders(t *testing.T) {
	var rng util.PRNG
	rng.Seed(424242)

	occupancies := []bitboard.Board{bitboard.Empty, bitboard.Universe}
	for i := 0; i < 256; i++ {
		occupancies = append(occupancies, bitboard.Board(rng.Uint64()))
	}

	for s := square.A8; s <= square.H1; s++ {
		for _, occ := range occupancies {
			if got, want := magic.Bishop(s, occ), attacks.Bishop(s, occ); got != want {
				t.Fatalf("bishop %s occ %016x: magic=%016x hyperbola=%016x", s, uint64(occ), uint64(got), uint64(want))
			}

			if got, want := magic.Rook(s, occ), attacks.Rook(s, occ); got != want {
				t.Fatalf("rook %s occ %016x: magic=%016x hyperbola=%016x", s, uint64(occ), uint64(got), uint64(want))
			}
		}
	}
}
