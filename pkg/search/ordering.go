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

package search

import (
	"shardchess.dev/x/core/pkg/eval"
	"shardchess.dev/x/core/pkg/move"
)

// orderMoves scores moves for this node: pkg/eval.OfMove ranks the pv
// move, captures/promotions (MVV-LVA), and castling; quiet moves that
// fall through to its default score are then ranked by killer status
// and history, keeping both below the capture range so tactics are
// always tried before quiet heuristics.
func (c *Context) orderMoves(moves []move.Move, ttMove move.Move, plys int) move.OrderedMoveList[eval.Move] {
	base := eval.OfMove(c.Board, ttMove)

	scorer := func(m move.Move) eval.Move {
		score := base(m)
		if score != eval.DefaultMove {
			return score
		}

		switch {
		case m == c.killers[plys][0]:
			return eval.KillerMoveValue
		case m == c.killers[plys][1]:
			return eval.KillerMoveValue - 1000
		}

		if h := c.history[c.Board.SideToMove][m.Source()][m.Target()]; h > 0 {
			return eval.Move(h)
		}
		return eval.DefaultMove
	}

	return move.ScoreMoves(moves, scorer)
}
