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

package castling

import (
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// RookInfo describes how a rook moves when its king castles.
type RookInfo struct {
	From, To square.Square
	RookType piece.Piece
}

// Rooks is a lookup table, indexed by the king's castling target square,
// describing how the corresponding rook must be moved. Squares other
// than the four castling targets hold the zero value.
var Rooks = [square.N]RookInfo{
	square.G1: {From: square.H1, To: square.F1, RookType: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, RookType: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, RookType: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, RookType: piece.BlackRook},
}

// RightUpdates maps each board square to the castling rights lost when a
// piece moves from or to it: a king square clears its color's rights, a
// rook's home square clears that rook's side's rights. Squares that hold
// neither a king's nor a rook's home position leave rights unaffected.
var RightUpdates = [square.N]Rights{
	BlackQueenside, None, None, None, Black, None, None, BlackKingside,
	None, None, None, None, None, None, None, None,
	None, None, None, None, None, None, None, None,
	None, None, None, None, None, None, None, None,
	None, None, None, None, None, None, None, None,
	None, None, None, None, None, None, None, None,
	None, None, None, None, None, None, None, None,
	WhiteQueenside, None, None, None, White, None, None, WhiteKingside,
}
