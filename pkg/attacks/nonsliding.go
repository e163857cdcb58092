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

// Package attacks precomputes non-sliding piece attack tables (knight,
// king, pawn) and provides sliding piece (bishop, rook, queen) attack
// generation via hyperbola quintessence.
package attacks

import (
	"shardchess.dev/x/core/pkg/bitboard"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// lookup tables for precalculated attack boards of non-sliding pieces.
var (
	King   [square.N]bitboard.Board
	Knight [square.N]bitboard.Board

	// Pawn is the diagonal capture set of a pawn on the given square.
	Pawn [piece.ColorN][square.N]bitboard.Board
)

func init() {
	for s := square.A8; s <= square.H1; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		Pawn[piece.White][s] = ray(s, 1, -1) | ray(s, -1, -1)
		Pawn[piece.Black][s] = ray(s, 1, 1) | ray(s, -1, 1)
	}
}

// ray returns the singleton bitboard offset from s by (fileOffset,
// rankOffset), or the empty bitboard if the offset square falls off
// the board.
func ray(s square.Square, fileOffset square.File, rankOffset square.Rank) bitboard.Board {
	file := s.File() + fileOffset
	rank := s.Rank() + rankOffset

	if file < 0 || file > square.FileH || rank < 0 || rank > square.Rank1 {
		return bitboard.Empty
	}

	var b bitboard.Board
	b.Set(square.New(file, rank))
	return b
}

func knightAttacksFrom(s square.Square) bitboard.Board {
	return ray(s, 2, 1) | ray(s, 1, 2) | ray(s, 1, -2) | ray(s, 2, -1) |
		ray(s, -1, 2) | ray(s, -2, 1) | ray(s, -2, -1) | ray(s, -1, -2)
}

func kingAttacksFrom(s square.Square) bitboard.Board {
	return ray(s, 1, 0) | ray(s, 1, 1) | ray(s, 0, 1) | ray(s, -1, 0) |
		ray(s, 0, -1) | ray(s, 1, -1) | ray(s, -1, 1) | ray(s, -1, -1)
}

// Pawns returns the set of squares attacked (in either diagonal
// direction) by every pawn in the given bitboard.
func Pawns(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return PawnsLeft(pawns, c) | PawnsRight(pawns, c)
}

// PawnPush returns the result of pushing every pawn in the bitboard
// forward by one square, ignoring occupancy.
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c)
}

// PawnsLeft returns the result of every pawn in the bitboard capturing
// towards file A.
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).West()
}

// PawnsRight returns the result of every pawn in the bitboard capturing
// towards file H.
func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).East()
}
