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

// iterativeDeepening is the main search function. It implements an iterative
// deepening loop which calls negamax for each iteration, widening depth by
// depth, and reports a UCI-shaped progress line after every completed one.
// https://www.chessprogramming.org/Iterative_Deepening
func (search *Context) iterativeDeepening() {
	// depth 1 is searched with the full window; there's no previous
	// score yet to aim an aspiration window at
	var pv move.Variation
	score := search.negamax(0, 1, -eval.Inf, eval.Inf, &pv)
	search.depth = 1

	if !search.stopped {
		search.pv, search.pvScore = pv, score
		search.report(search.GenerateReport())
	}

	for depth := 2; depth <= search.limits.Depth; depth++ {
		search.depth = depth

		result, line, ok := search.aspirationWindow(depth, score)
		if search.stopped {
			break
		}

		if ok {
			// depth completed with an exact score; commit it as the new
			// best result. if it didn't, the previous depth's pv/score
			// stand unchanged, mirroring a depth that ran out of time
			// mid-search.
			score = result
			pv = line
			search.pv, search.pvScore = pv, score

			search.report(search.GenerateReport())
		}

		if search.limits.Time != nil && !search.limits.Infinite {
			budget := search.limits.Time.Budget()
			if budget > 0 && search.limits.Time.Elapsed() > (budget*3)/4 {
				break
			}
		}
	}
}
