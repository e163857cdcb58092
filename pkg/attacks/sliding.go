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

package attacks

import (
	"shardchess.dev/x/core/pkg/bitboard"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// Bishop returns the attack set of a bishop on s given the occupancy
// blockers, using hyperbola quintessence on both diagonals.
func Bishop(s square.Square, blockers bitboard.Board) bitboard.Board {
	diagonal := bitboard.Hyperbola(s, blockers, bitboard.Diagonals[s.Diagonal()])
	antiDiagonal := bitboard.Hyperbola(s, blockers, bitboard.AntiDiagonals[s.AntiDiagonal()])
	return diagonal | antiDiagonal
}

// Rook returns the attack set of a rook on s given the occupancy
// blockers, using hyperbola quintessence on the file and rank.
func Rook(s square.Square, blockers bitboard.Board) bitboard.Board {
	file := bitboard.Hyperbola(s, blockers, bitboard.Files[s.File()])
	rank := bitboard.Hyperbola(s, blockers, bitboard.Ranks[s.Rank()])
	return file | rank
}

// Queen returns the attack set of a queen on s, the union of the rook
// and bishop attack sets.
func Queen(s square.Square, blockers bitboard.Board) bitboard.Board {
	return Rook(s, blockers) | Bishop(s, blockers)
}

// Of returns the attack set of the given piece on s with the given
// occupancy. The occupancy is unused for non-sliding pieces.
func Of(p piece.Piece, s square.Square, blockers bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return Pawn[p.Color()][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, blockers)
	case piece.Rook:
		return Rook(s, blockers)
	case piece.Queen:
		return Queen(s, blockers)
	case piece.King:
		return King[s]
	default:
		panic("attacks.Of: unsupported piece type")
	}
}
