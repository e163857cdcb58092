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

// maxPermutations bounds the table size passed to NewTable: a rook has
// at most 12 relevant blocker bits (2^12 permutations), a bishop at
// most 9; 4096 comfortably covers both.
const maxPermutations = 1 << 12

var bishopTable *Table
var rookTable *Table

func init() {
	bishopTable = NewTable(maxPermutations, BishopMoves)
	rookTable = NewTable(maxPermutations, RookMoves)
}

// Bishop returns the magic-table attack set for a bishop on s.
func Bishop(s square.Square, blockers bitboard.Board) bitboard.Board {
	return bishopTable.Probe(s, blockers)
}

// Rook returns the magic-table attack set for a rook on s.
func Rook(s square.Square, blockers bitboard.Board) bitboard.Board {
	return rookTable.Probe(s, blockers)
}

// Queen returns the magic-table attack set for a queen on s.
func Queen(s square.Square, blockers bitboard.Board) bitboard.Board {
	return Rook(s, blockers) | Bishop(s, blockers)
}
