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

package bitboard

import (
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// Between[s1][s2] is the set of squares strictly between s1 and s2 when
// they share a file, rank, diagonal, or anti-diagonal; Empty otherwise.
// Used to build the check block-mask and pin rays.
var Between [square.N][square.N]Board

// AdjacentFiles[f] is the set of squares on the files neighbouring f.
var AdjacentFiles [square.FileN]Board

// ForwardRanksMask[c][r] is the set of ranks in front of rank r from the
// point of view of color c (inclusive of r).
var ForwardRanksMask [piece.ColorN][square.RankN]Board

// ForwardFileMask[c][s] is s's own square plus every square ahead of s
// on its file from color c's point of view.
var ForwardFileMask [piece.ColorN][square.N]Board

// PassedPawnMask[c][s] is the set of squares on s's file and the two
// adjacent files, on s's own rank and every rank ahead of it from color
// c's point of view: a pawn of color c on s counts as passed iff no
// enemy pawn occupies this mask, so an enemy pawn level with it on an
// adjacent file also stops it counting.
var PassedPawnMask [piece.ColorN][square.N]Board

func init() {
	for s1 := square.A8; s1 <= square.H1; s1++ {
		for s2 := square.A8; s2 <= square.H1; s2++ {
			sqs := Squares[s1] | Squares[s2]
			var mask Board

			switch {
			case s1.File() == s2.File():
				mask = Files[s1.File()]
			case s1.Rank() == s2.Rank():
				mask = Ranks[s1.Rank()]
			case s1.Diagonal() == s2.Diagonal():
				mask = Diagonals[s1.Diagonal()]
			case s1.AntiDiagonal() == s2.AntiDiagonal():
				mask = AntiDiagonals[s1.AntiDiagonal()]
			default:
				continue
			}

			Between[s1][s2] = Hyperbola(s1, sqs, mask) & Hyperbola(s2, sqs, mask)
		}
	}

	for file := square.File(0); file < square.FileN; file++ {
		bb := Files[file]
		AdjacentFiles[file] = bb.East() | bb.West()
	}

	for rank := square.Rank(0); rank < square.RankN; rank++ {
		for rank2 := rank; rank2 >= 0; rank2-- {
			ForwardRanksMask[piece.White][rank] |= Ranks[rank2]
		}

		for rank2 := rank; rank2 < square.RankN; rank2++ {
			ForwardRanksMask[piece.Black][rank] |= Ranks[rank2]
		}
	}

	for sq := square.Square(0); sq < square.N; sq++ {
		PassedPawnMask[piece.White][sq] = ForwardRanksMask[piece.White][sq.Rank()] &
			(AdjacentFiles[sq.File()] | Files[sq.File()])
		PassedPawnMask[piece.Black][sq] = ForwardRanksMask[piece.Black][sq.Rank()] &
			(AdjacentFiles[sq.File()] | Files[sq.File()])

		ForwardFileMask[piece.White][sq] = Files[sq.File()] & ForwardRanksMask[piece.White][sq.Rank()]
		ForwardFileMask[piece.Black][sq] = Files[sq.File()] & ForwardRanksMask[piece.Black][sq.Rank()]
	}
}
