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

package eval

import (
	"shardchess.dev/x/core/pkg/attacks"
	"shardchess.dev/x/core/pkg/bitboard"
	"shardchess.dev/x/core/pkg/board"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// mobilityWeight is the bonus per reachable square beyond the pieces'
// own occupancy, added once per color and tapered mg/eg.
var mobilityWeight = [piece.TypeN]Score{
	piece.Knight: S(4, 4),
	piece.Bishop: S(4, 4),
	piece.Rook:   S(2, 4),
	piece.Queen:  S(1, 2),
}

// rook file bonuses: a rook behind no pawns at all is worth more than
// one behind only enemy pawns.
var rookFullOpenFile = S(22, 10)
var rookSemiOpenFile = S(10, 10)

// doubledPawnPenalty is charged once per pawn beyond the first on a
// file.
var doubledPawnPenalty = S(-5, -20)

// passedPawnBonus[rank] is indexed by how far the pawn has advanced
// from its own back rank (1 = starting rank, 6 = one step from
// promoting), relative to its own color.
var passedPawnBonus = [square.RankN]Score{
	S(0, 0),
	S(10, 20),
	S(10, 25),
	S(10, 35),
	S(25, 55),
	S(45, 90),
	S(65, 130),
	S(0, 0),
}

// kingSafetyWeight scales the count of enemy-attacked squares in the
// king's zone into a middlegame-only penalty; an exposed king matters
// far less once queens and rooks are off the board.
const kingSafetyWeight = -6

// termsScore evaluates mobility, pawn structure, rook placement and
// king safety from the perspective of the side to move.
func termsScore(b *board.Board) Score {
	us := b.SideToMove
	them := us.Other()

	return pieceTerms(b, us) - pieceTerms(b, them) +
		pawnTerms(b, us) - pawnTerms(b, them) +
		kingSafetyTerms(b, us, them) - kingSafetyTerms(b, them, us)
}

// pieceTerms evaluates the mobility and file placement of us's
// knights, bishops, rooks and queens.
func pieceTerms(b *board.Board, us piece.Color) Score {
	var score Score

	friendly := b.ColorBBs[us]
	occupied := b.Occupied()

	for pieces := friendly &^ b.PawnsBB(us) &^ b.KingBB(us); pieces != bitboard.Empty; {
		sq := pieces.Pop()
		p := b.Position[sq]
		pt := p.Type()

		reach := attacks.Of(p, sq, occupied) &^ friendly
		score += mobilityWeight[pt] * Score(reach.Count())

		if pt == piece.Rook {
			file := bitboard.Files[sq.File()]
			switch {
			case b.PieceBBs[piece.Pawn]&file == bitboard.Empty:
				score += rookFullOpenFile
			case b.PawnsBB(us)&file == bitboard.Empty:
				score += rookSemiOpenFile
			}
		}
	}

	return score
}

// pawnTerms evaluates doubled and passed pawns for us.
func pawnTerms(b *board.Board, us piece.Color) Score {
	var score Score

	pawns := b.PawnsBB(us)
	enemyPawns := b.PawnsBB(us.Other())

	for file := square.FileA; file <= square.FileH; file++ {
		n := (pawns & bitboard.Files[file]).Count()
		if n > 1 {
			score += doubledPawnPenalty * Score(n-1)
		}
	}

	for rest := pawns; rest != bitboard.Empty; {
		sq := rest.Pop()
		if enemyPawns&bitboard.PassedPawnMask[us][sq] == bitboard.Empty {
			// progress is the pawn's distance travelled from its own
			// back rank, 1 on its starting rank and 6 one step from
			// promoting.
			progress := int(sq.Rank())
			if us == piece.White {
				progress = int(square.Rank1) - progress
			}
			score += passedPawnBonus[progress]
		}
	}

	return score
}

// kingSafetyTerms penalizes enemy pieces attacking squares around us's
// king, scaled by how many attackers are involved.
func kingSafetyTerms(b *board.Board, us, them piece.Color) Score {
	kingSq := b.KingBB(us).FirstOne()
	area := attacks.KingAreas[us][kingSq]
	occupied := b.Occupied()

	var attackersN, attacksN int

	count := func(attacked bitboard.Board) {
		hits := attacked & area
		if hits != bitboard.Empty {
			attackersN++
			attacksN += hits.Count()
		}
	}

	for knights := b.KnightsBB(them); knights != bitboard.Empty; {
		count(attacks.Knight[knights.Pop()])
	}
	for bishops := b.BishopsBB(them); bishops != bitboard.Empty; {
		sq := bishops.Pop()
		count(attacks.Bishop(sq, occupied))
	}
	for rooks := b.RooksBB(them); rooks != bitboard.Empty; {
		sq := rooks.Pop()
		count(attacks.Rook(sq, occupied))
	}
	for queens := b.QueensBB(them); queens != bitboard.Empty; {
		sq := queens.Pop()
		count(attacks.Queen(sq, occupied))
	}

	if attackersN < 2 {
		// a lone attacker rarely breaks through; ignore it like the
		// safety evaluation of most classical engines does.
		return 0
	}

	return S(Eval(kingSafetyWeight*attackersN*attacksN), 0)
}
