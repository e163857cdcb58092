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

package magic

import (
	"shardchess.dev/x/core/pkg/bitboard"
	"shardchess.dev/x/core/pkg/square"
)

// castRay walks from s in the given (file, rank) step direction, OR-ing
// each square into the result and stopping once it leaves the board or
// steps onto an occupied square. When masking is true the final square
// of each ray is excluded (an edge blocker cannot hide a blocker behind
// it, so it is never "relevant").
func castRay(s square.Square, blockers bitboard.Board, masking bool, df square.File, dr square.Rank) bitboard.Board {
	var attacks bitboard.Board

	file, rank := s.File()+df, s.Rank()+dr
	for file >= square.FileA && file <= square.FileH && rank >= square.Rank8 && rank <= square.Rank1 {
		sq := square.New(file, rank)

		atEdge := file+df < square.FileA || file+df > square.FileH ||
			rank+dr < square.Rank8 || rank+dr > square.Rank1

		if masking && atEdge {
			break
		}

		attacks.Set(sq)

		if blockers.IsSet(sq) {
			break
		}

		file += df
		rank += dr
	}

	return attacks
}

// BishopMoves is a magic.MoveFunc generating bishop attacks by ray
// casting along all four diagonal directions.
func BishopMoves(s square.Square, blockers bitboard.Board, masking bool) bitboard.Board {
	return castRay(s, blockers, masking, 1, 1) |
		castRay(s, blockers, masking, 1, -1) |
		castRay(s, blockers, masking, -1, 1) |
		castRay(s, blockers, masking, -1, -1)
}

// RookMoves is a magic.MoveFunc generating rook attacks by ray casting
// along all four orthogonal directions.
func RookMoves(s square.Square, blockers bitboard.Board, masking bool) bitboard.Board {
	return castRay(s, blockers, masking, 1, 0) |
		castRay(s, blockers, masking, -1, 0) |
		castRay(s, blockers, masking, 0, 1) |
		castRay(s, blockers, masking, 0, -1)
}
