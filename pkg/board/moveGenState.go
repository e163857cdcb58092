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

package board

import (
	"shardchess.dev/x/core/pkg/attacks"
	"shardchess.dev/x/core/pkg/bitboard"
	"shardchess.dev/x/core/pkg/move"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// moveGenState stores the utility bitboards and generated data used
// during move generation. It is kept separate from Board since this
// data isn't necessary in the board representation itself.
type moveGenState struct {
	*Board

	MoveList []move.Move

	Us, Them piece.Color

	// adding Down to a square gives the square "below" it, "below"
	// being towards the side-to-move's own back rank.
	Down square.Square

	PromotionRankBB  bitboard.Board
	EnPassantRankBB  bitboard.Board
	DoublePushRankBB bitboard.Board

	Kings [piece.ColorN]square.Square

	TacticalOnly bool

	Friends  bitboard.Board
	Enemies  bitboard.Board
	Occupied bitboard.Board

	// Target is the set of squares non-king pieces may move to: empty
	// or enemy-occupied squares intersected with the check-mask.
	Target bitboard.Board
	// KingTarget additionally excludes squares seen by the enemy.
	KingTarget bitboard.Board

	CheckN    int
	CheckMask bitboard.Board

	PinnedD  bitboard.Board
	PinnedHV bitboard.Board

	SeenByEnemy bitboard.Board

	Pawn, Knight, Bishop, Rook, Queen, King piece.Piece
}

// AppendMoves appends the given moves to the state's move-list.
func (s *moveGenState) AppendMoves(m ...move.Move) {
	s.MoveList = append(s.MoveList, m...)
}

// Init calculates all the utility bitboards necessary for move
// generation. captureOnly restricts generation to tactical moves, for
// use in quiescence search.
func (s *moveGenState) Init(captureOnly bool) {
	s.Kings[piece.White] = s.KingBB(piece.White).FirstOne()
	s.Kings[piece.Black] = s.KingBB(piece.Black).FirstOne()

	s.TacticalOnly = captureOnly

	s.Friends = s.ColorBBs[s.SideToMove]
	s.Enemies = s.ColorBBs[s.SideToMove.Other()]
	s.Occupied = s.Friends | s.Enemies

	s.Us = s.SideToMove
	s.Them = s.Us.Other()

	if s.Us == piece.White {
		s.PromotionRankBB = bitboard.Rank8
		s.EnPassantRankBB = bitboard.Rank5
		s.DoublePushRankBB = bitboard.Rank3

		s.Down = 8

		s.Pawn = piece.WhitePawn
		s.Knight = piece.WhiteKnight
		s.Bishop = piece.WhiteBishop
		s.Rook = piece.WhiteRook
		s.Queen = piece.WhiteQueen
		s.King = piece.WhiteKing
	} else {
		s.PromotionRankBB = bitboard.Rank1
		s.EnPassantRankBB = bitboard.Rank4
		s.DoublePushRankBB = bitboard.Rank6

		s.Down = -8

		s.Pawn = piece.BlackPawn
		s.Knight = piece.BlackKnight
		s.Bishop = piece.BlackBishop
		s.Rook = piece.BlackRook
		s.Queen = piece.BlackQueen
		s.King = piece.BlackKing
	}

	s.CalculateCheckmask()
	s.CalculatePinmask()

	s.SeenByEnemy = s.SeenSquares(s.SideToMove.Other())

	if captureOnly {
		s.Target = s.Enemies & s.CheckMask
		s.KingTarget = s.Enemies &^ s.SeenByEnemy
	} else {
		s.Target = ^s.Friends & s.CheckMask
		s.KingTarget = ^s.Friends &^ s.SeenByEnemy
	}

	// 31 is the average number of legal moves in a chess position.
	// source: https://chess.stackexchange.com/a/24325/33336
	s.MoveList = make([]move.Move, 0, 31)
}

// CalculateCheckmask calculates the check-mask of the current position
// and the number of checkers.
//
// A checker is an enemy piece directly checking the king; there can be
// at most two (double check). The check-mask is the set of squares a
// friendly piece can move to in order to block a single check: the
// checking piece's square plus, for a sliding checker, the squares
// between it and the king. In double check only king moves are
// generated and the mask is not consulted. It is the universal set
// when the king isn't in check.
func (s *moveGenState) CalculateCheckmask() {
	s.CheckN = 0
	s.CheckMask = bitboard.Empty

	kingSq := s.Kings[s.Us]

	pawns := s.PawnsBB(s.Them) & attacks.Pawn[s.Us][kingSq]
	knights := s.KnightsBB(s.Them) & attacks.Knight[kingSq]
	bishops := (s.BishopsBB(s.Them) | s.QueensBB(s.Them)) & attacks.Bishop(kingSq, s.Occupied)
	rooks := (s.RooksBB(s.Them) | s.QueensBB(s.Them)) & attacks.Rook(kingSq, s.Occupied)

	// a pawn and a knight cannot both be checking at once: neither is a
	// sliding piece, so no discovered attack can accompany them.
	switch {
	case pawns != bitboard.Empty:
		s.CheckMask |= pawns
		s.CheckN++

	case knights != bitboard.Empty:
		s.CheckMask |= knights
		s.CheckN++
	}

	if bishops != bitboard.Empty {
		if bishops.Count() > 1 {
			// double check from two bishops/queens; leave check-mask empty.
			s.CheckN += 2
		} else {
			bishopSq := bishops.FirstOne()
			s.CheckMask |= bitboard.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
			s.CheckN++
		}
	}

	if s.CheckN < 2 && rooks != bitboard.Empty {
		if s.CheckN == 0 && rooks.Count() > 1 {
			// double check from two rooks/queens; leave check-mask empty.
			s.CheckN += 2
		} else {
			rookSq := rooks.FirstOne()
			s.CheckMask |= bitboard.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			s.CheckN++
		}
	}

	if s.CheckN == 0 {
		s.CheckMask = bitboard.Universe
	}
}

// CalculatePinmask calculates the diagonal and orthogonal pin-masks: the
// set of squares along which a pinned piece may still move.
func (s *moveGenState) CalculatePinmask() {
	kingSq := s.Kings[s.Us]

	friends := s.ColorBBs[s.Us]
	enemies := s.ColorBBs[s.Them]

	s.PinnedD = bitboard.Empty
	s.PinnedHV = bitboard.Empty

	// treat the king as a rook/bishop of its own color and intersect its
	// ray with actual enemy rooks/bishops+queens; if exactly one friendly
	// piece blocks that ray, it is pinned.
	for rooks := (s.RooksBB(s.Them) | s.QueensBB(s.Them)) & attacks.Rook(kingSq, enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		possiblePin := bitboard.Between[kingSq][rook] | bitboard.Squares[rook]

		if (possiblePin & friends).Count() == 1 {
			s.PinnedHV |= possiblePin
		}
	}

	for bishops := (s.BishopsBB(s.Them) | s.QueensBB(s.Them)) & attacks.Bishop(kingSq, enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		possiblePin := bitboard.Between[kingSq][bishop] | bitboard.Squares[bishop]

		if (possiblePin & friends).Count() == 1 {
			s.PinnedD |= possiblePin
		}
	}
}

// SeenSquares returns the set of squares attacked by by's pieces. The
// defending king is excluded from the blocker set since it must move
// away from a sliding attack, exposing the squares behind it.
func (s *moveGenState) SeenSquares(by piece.Color) bitboard.Board {
	pawns := s.PawnsBB(by)
	knights := s.KnightsBB(by)
	bishops := s.BishopsBB(by)
	rooks := s.RooksBB(by)
	queens := s.QueensBB(by)
	kingSq := s.Kings[by]

	blockers := s.Occupied &^ s.KingBB(by.Other())

	seen := attacks.PawnsLeft(pawns, by) | attacks.PawnsRight(pawns, by)

	for knights != bitboard.Empty {
		from := knights.Pop()
		seen |= attacks.Knight[from]
	}

	for bishops != bitboard.Empty {
		from := bishops.Pop()
		seen |= attacks.Bishop(from, blockers)
	}

	for rooks != bitboard.Empty {
		from := rooks.Pop()
		seen |= attacks.Rook(from, blockers)
	}

	for queens != bitboard.Empty {
		from := queens.Pop()
		seen |= attacks.Queen(from, blockers)
	}

	seen |= attacks.King[kingSq]

	return seen
}
