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
	"shardchess.dev/x/core/internal/util"
	"shardchess.dev/x/core/pkg/eval"
	"shardchess.dev/x/core/pkg/move"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// historyTable scores quiet moves by how often they have produced a
// beta cutoff in the past, indexed by the moving side, source, and
// target square.
type historyTable [piece.ColorN][square.N][square.N]int32

// storeKiller installs killer as one of the two killer moves at plys.
// Killers are move-ordering hints only; they are never used to
// short-circuit legality. Slot 0 is installed unconditionally on a
// cutoff from a different quiet move, shifting the previous slot 0
// into slot 1.
func (c *Context) storeKiller(plys int, killer move.Move) {
	if killer.IsQuiet() && killer != c.killers[plys][0] {
		c.killers[plys][1] = c.killers[plys][0]
		c.killers[plys][0] = killer
	}
}

// updateHistory adjusts the history score of a quiet move by bonus,
// decaying the existing entry towards zero as it grows so that the
// table adapts to new information instead of saturating.
func (c *Context) updateHistory(m move.Move, bonus int32) {
	if !m.IsQuiet() {
		return
	}

	entry := &c.history[c.Board.SideToMove][m.Source()][m.Target()]
	*entry += bonus - *entry*util.Abs(bonus)/32768
}

// depthBonus returns the history bonus awarded for a cutoff found at
// the given depth.
func depthBonus(depth int) int32 {
	return int32(util.Min(2000, depth*155))
}

// seeMargins returns the static-exchange-evaluation pruning thresholds
// used to skip clearly-losing quiet and noisy moves at shallow depth.
func seeMargins(depth int) (quiet, noisy eval.Eval) {
	quiet = eval.Eval(-64 * depth)
	noisy = eval.Eval(-19 * depth * depth)
	return quiet, noisy
}
