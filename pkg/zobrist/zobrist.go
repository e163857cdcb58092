// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package zobrist provides the incrementally-maintained Zobrist hash
// key tables used by pkg/board to identify positions for the
// transposition table, evaluation cache, and repetition detection.
package zobrist

import (
	"shardchess.dev/x/core/internal/util"
	"shardchess.dev/x/core/pkg/castling"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// Key is a Zobrist hash key.
type Key uint64

// PieceSquare holds the XOR key for each piece-square combination.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds the XOR key for each en-passant-capturable file.
var EnPassant [square.FileN]Key

// Castling holds the XOR key for each castling-rights combination.
var Castling [castling.N]Key

// SideToMove is XORed into the hash whenever it is Black to move.
var SideToMove Key

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used from Stockfish

	for p := 0; p < piece.N; p++ {
		for s := square.A8; s <= square.H1; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
