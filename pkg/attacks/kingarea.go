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

// KingAreas[c][s] is the zone of squares around a king of color c on
// square s used by the king-safety evaluation term: the king's own
// attack set plus an extra rank towards the opponent's side of the
// board (north for White, south for Black), and
// one extra file when the king sits on the a- or h-file.
var KingAreas [piece.ColorN][square.N]bitboard.Board

func init() {
	for s := square.A8; s <= square.H1; s++ {
		area := King[s] | bitboard.Squares[s]

		KingAreas[piece.White][s] = area | area.North()
		KingAreas[piece.Black][s] = area | area.South()

		switch s.File() {
		case square.FileA:
			KingAreas[piece.White][s] |= KingAreas[piece.White][s].East()
			KingAreas[piece.Black][s] |= KingAreas[piece.Black][s].East()
		case square.FileH:
			KingAreas[piece.White][s] |= KingAreas[piece.White][s].West()
			KingAreas[piece.Black][s] |= KingAreas[piece.Black][s].West()
		}
	}
}
