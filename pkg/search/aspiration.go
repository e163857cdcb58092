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

// initialWindow is the starting half-width of the aspiration window
// opened around the previous iteration's score.
const initialWindow eval.Eval = 25

// MaxWindowWidth is the ceiling a widening aspiration window is allowed
// to reach before the failing bound is given up on entirely and
// collapsed to +-infinity.
const MaxWindowWidth eval.Eval = 500

// aspirationWindow implements aspiration windows, which are a way to
// reduce the search space in an alpha-beta search. The technique is to
// use a guess of the expected value (the previous iterative-deepening
// iteration's score), and use a window around this as the alpha-beta
// bounds. Because the window is narrower, more beta cutoffs are achieved,
// and the search takes a shorter time. The drawback is that if the true
// score is outside this window, a costly re-search must be made with a
// widened window.
//
// If the window collapses to +-infinity on both sides without ever
// landing an exact score, this depth is given up on and ok is false;
// the caller should keep the previous iteration's result.
func (search *Context) aspirationWindow(depth int, prevEval eval.Eval) (result eval.Eval, pv move.Variation, ok bool) {
	window := initialWindow
	alpha := prevEval - window
	beta := prevEval + window

	for {
		var childPV move.Variation
		result = search.negamax(0, depth, alpha, beta, &childPV)

		if search.stopped {
			return 0, move.Variation{}, false
		}

		if result > alpha && result < beta {
			// exact score landed inside the window: done
			return result, childPV, true
		}

		if result <= alpha {
			alpha -= window
			if window > MaxWindowWidth {
				alpha = -eval.Inf
			}
		} else {
			beta += window
			if window > MaxWindowWidth {
				beta = eval.Inf
			}
		}

		window *= 2

		if alpha == -eval.Inf && beta == eval.Inf {
			return 0, move.Variation{}, false
		}
	}
}
