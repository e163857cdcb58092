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
	"shardchess.dev/x/core/pkg/tt"
)

// DefaultMargin is the per-ply futility margin used at shallow depth
// when the side to move is not in check.
const DefaultMargin eval.Eval = 120

// negamax is a simplified version of the minmax searching algorithm, which
// uses a single function for both the maximizing and minimizing players.
// This can be achieved because chess is a zero-sum game and one player's
// advantage is the other's disadvantage.
// https://www.chessprogramming.org/Negamax
//
// This function also implements alpha-beta pruning to reduce the amount of
// nodes that need to be searched, due to the fact that a single refutation
// is enough to mark a position as worse compared to an already found one.
// https://www.chessprogramming.org/Alpha-Beta
func (search *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	search.nodes++
	if plys > search.selDepth {
		search.selDepth = plys
	}

	// quick exit clauses
	switch {
	case search.shouldStop():
		// some search limit has been breached
		// the return value doesn't matter since this search's result
		// will be trashed and the previous iteration's pv will be used
		return 0

	case search.Board.IsDraw():
		// position is draw due to 50-move rule or threefold-repetition
		return search.draw()

	case depth <= 0, plys >= MaxDepth:
		// depth 0 reached, drop to quiescence search to prevent
		// the horizon effect from making the evaluation bad
		search.qsRoot = plys
		return search.quiescence(plys, alpha, beta)
	}

	// node properties
	isPVNode := beta-alpha > 1 // beta = alpha + 1 during PVS
	inCheck := search.Board.IsInCheck(search.Board.SideToMove)

	// futility pruning: out of check at shallow depth, a position whose
	// static eval already clears beta by a comfortable margin is very
	// unlikely to swing back within the window, so cut without searching.
	if !isPVNode && !inCheck && depth <= 2 {
		margin := DefaultMargin * eval.Eval(depth)
		if staticEval := search.evaluate(); staticEval-margin >= beta {
			return staticEval
		}
	}

	// generate all moves
	moves := search.Board.GenerateMoves()
	if len(moves) == 0 {
		// no legal moves, so some type of mate

		if inCheck {
			return eval.MatedIn(plys) // checkmate
		}

		return eval.Draw // stalemate
	}

	// keep track of the original value of alpha for determining whether
	// the score will act as an upper bound entry in the transposition table
	originalAlpha := alpha

	// keep track of best move and score
	bestMove := move.Null
	bestEval := -eval.Inf

	ttMove := move.Null

	// check for transposition table hits
	if entry, hit := search.tt.Probe(search.Board.Hash); hit {
		// use pv move for move ordering in any case
		ttMove = entry.Move

		// only use entry if current node is not a pv node and
		// entry depth is >= current depth (not worse quality)
		if !isPVNode && int(entry.Depth) >= depth {
			search.ttHits++
			value := entry.Value.Eval(plys)

			switch entry.Type {
			case tt.Exact:
				return value
			case tt.LowerBound:
				alpha = util.Max(alpha, value)
			case tt.UpperBound:
				beta = util.Min(beta, value)
			}

			if alpha >= beta {
				return value // fail high
			}
		}
	}

	quietMargin, noisyMargin := seeMargins(depth)

	// move ordering; score the generated moves
	list := search.orderMoves(moves, ttMove, plys)
	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)

		// SEE-based pruning: at shallow, non-pv nodes out of check and
		// with a move already found, give up on quiet/noisy moves that
		// lose material by more than the depth-scaled margin.
		if !isPVNode && !inCheck && bestEval > -eval.WinInMaxPly && depth <= 8 {
			margin := quietMargin
			if m.IsCapture() {
				margin = noisyMargin
			}
			if !eval.SEE(search.Board, m, margin) {
				continue
			}
		}

		var childPV move.Variation

		search.Board.MakeMove(m)

		var childEval eval.Eval

		switch {
		case i == 0:
			// first move, searched with the full window
			childEval = -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)

		default:
			// Late Move Reduction: try a shallower null-window search
			// first for quiet, late, non-check moves
			reduction := 0
			if depth >= 3 && i >= 3 && m.IsQuiet() && !inCheck {
				reduction = lateMoveReduction(i)
			}

			childEval = -search.negamax(plys+1, depth-1-reduction, -alpha-1, -alpha, &childPV)

			if reduction > 0 && childEval > alpha {
				// reduced search beat alpha, re-search at full depth
				childEval = -search.negamax(plys+1, depth-1, -alpha-1, -alpha, &childPV)
			}

			if isPVNode && childEval > alpha && childEval < beta {
				// null window search failed inside the pv window,
				// re-search with the full window for an exact score
				childEval = -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
			}
		}

		search.Board.UnmakeMove()

		if search.stopped {
			return 0
		}

		// update score and bounds
		if childEval > bestEval {
			// better move found
			bestMove = m
			bestEval = childEval

			// check if move is new pv move
			if childEval > alpha {
				// new pv so alpha increases
				alpha = childEval

				// update parent pv
				pv.Update(m, childPV)

				if alpha >= beta {
					if m.IsQuiet() {
						search.storeKiller(plys, m)
						search.updateHistory(m, depthBonus(depth))
					}
					break // fail high
				}
			}
		}
	}

	// if search is stopped, score may be of a bad quality and
	// thus can pollute the transposition table for future searches
	if !search.stopped {
		var entryType tt.EntryType
		switch {
		case bestEval <= originalAlpha:
			// if score <= alpha, it is a worse position for the max player than
			// a previously explored line, since the move's exact score is at
			// most score. Therefore, it is an upperbound on the exact score.
			entryType = tt.UpperBound
		case bestEval >= beta:
			// if score >= beta, it is a worse position for the min player than
			// a previously explored line, singe the move's exact score is at
			// least score. Therefore, it is a lowerbound on the exact score.
			entryType = tt.LowerBound
		default:
			// if score is inside the bounds of alpha and beta, both the players
			// have been able to improve their position and it is an exact score.
			entryType = tt.Exact
		}

		// update transposition table
		search.tt.Store(tt.Entry{
			Hash:  search.Board.Hash,
			Value: tt.EvalFrom(bestEval, plys),
			Move:  bestMove,
			Depth: uint8(depth),
			Type:  entryType,
		})
	}

	return bestEval
}
