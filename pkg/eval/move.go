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

package eval

import (
	"math"

	"shardchess.dev/x/core/pkg/board"
	"shardchess.dev/x/core/pkg/move"
	"shardchess.dev/x/core/pkg/piece"
)

// MoveFunc represents a move evaluation function.
type MoveFunc func(move.Move) Move

// Move represents the evaluation of a move used to order the move
// list before a search explores it.
type Move uint32

// move-ordering bonus constants.
const (
	PVMove        Move = math.MaxUint32
	CastlingValue Move = 4000
	CheckValue    Move = 5000

	MvvLvaOffset Move = 100000

	KillerMoveValue Move = 90000
	PromotionValue  Move = 80000

	DefaultMove Move = 0
)

// MvvLva table taken from Blunder.
// score = MvvLvaOffset + MvvLva[victim][attacker]
var MvvLva = [piece.TypeN][piece.TypeN]Move{
	// Attackers:  -   P   N   B   R   Q   K
	piece.Pawn:   {16, 15, 14, 13, 12, 11, 10},
	piece.Knight: {26, 25, 24, 23, 22, 21, 20},
	piece.Bishop: {36, 35, 34, 33, 32, 31, 30},
	piece.Rook:   {46, 45, 44, 43, 42, 41, 40},
	piece.Queen:  {56, 55, 54, 53, 52, 51, 50},
}

// OfMove returns a move evaluation function for ordering the moves of
// b, preferring pv over captures (ranked by MVV-LVA) over everything
// else.
func OfMove(b *board.Board, pv move.Move) MoveFunc {
	return func(m move.Move) Move {
		switch {
		case m == pv:
			return PVMove

		case m.IsCapture(), m.IsPromotion():
			victim := b.Position[m.Target()].Type()
			attacker := m.FromPiece().Type()

			return MvvLvaOffset + MvvLva[victim][attacker]

		case m.IsCastle():
			return CastlingValue

		default:
			return DefaultMove
		}
	}
}
