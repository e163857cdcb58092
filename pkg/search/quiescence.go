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
	"shardchess.dev/x/core/internal/util"
	"shardchess.dev/x/core/pkg/eval"
	"shardchess.dev/x/core/pkg/move"
)

// maxQuiescencePlys bounds how many plys of captures quiescence will
// chase before giving up and returning the standing evaluation, so a
// long forced exchange sequence can't run away.
const maxQuiescencePlys = 8

// quiescence searches only tactical moves (captures and promotions) to
// resolve the position before handing its evaluation back to negamax,
// avoiding the horizon effect a hard depth cutoff would otherwise cause.
// https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	search.nodes++
	if plys > search.selDepth {
		search.selDepth = plys
	}

	if search.shouldStop() {
		return 0
	}

	if search.Board.IsDraw() {
		return search.draw()
	}

	standPat := search.evaluate()

	// fail-hard: a stand-pat cut reports beta itself, never the
	// (possibly larger) stand-pat value, so the result never escapes
	// the [alpha, beta] window.
	if standPat >= beta {
		return beta
	}
	alpha = util.Max(alpha, standPat)

	if plys-search.qsRoot >= maxQuiescencePlys {
		return alpha
	}

	captures := search.Board.GenerateCaptures()
	list := move.ScoreMoves(captures, eval.OfMove(search.Board, move.Null))
	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)

		// skip captures that static-exchange-evaluation says lose
		// material outright; they can't improve on the standing eval
		if !eval.SEE(search.Board, m, 0) {
			continue
		}

		search.Board.MakeMove(m)
		score := -search.quiescence(plys+1, -beta, -alpha)
		search.Board.UnmakeMove()

		if search.stopped {
			return 0
		}

		if score > alpha {
			alpha = score
			if alpha >= beta {
				break
			}
		}
	}

	return alpha
}
