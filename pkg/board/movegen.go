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
	"shardchess.dev/x/core/pkg/castling"
	"shardchess.dev/x/core/pkg/move"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// GenerateMoves generates every legal move in the current position.
func (b *Board) GenerateMoves() []move.Move {
	var s moveGenState
	s.Board = b
	s.Init(false)
	return s.generate()
}

// GenerateCaptures generates every legal tactical move (captures and
// promotions, with all four promotion pieces) in the current position,
// for use in quiescence search.
func (b *Board) GenerateCaptures() []move.Move {
	var s moveGenState
	s.Board = b
	s.Init(true)
	return s.generate()
}

func (s *moveGenState) generate() []move.Move {
	s.appendKingMoves()

	if s.CheckN >= 2 {
		// only king moves are possible in double check
		return s.MoveList
	}

	s.appendKnightMoves()
	s.appendBishopMoves()
	s.appendRookMoves()
	s.appendQueenMoves()
	s.appendPawnMoves()

	return s.MoveList
}

func (s *moveGenState) appendKingMoves() {
	kingSq := s.Kings[s.Us]

	kingMoves := attacks.King[kingSq] & s.KingTarget
	s.serializeMoves(s.King, kingSq, kingMoves)

	if s.CheckN == 0 && !s.TacticalOnly {
		s.appendCastlingMoves()
	}
}

func (s *moveGenState) appendKnightMoves() {
	for knights := s.KnightsBB(s.Us) &^ (s.PinnedD | s.PinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		knightMoves := attacks.Knight[from] & s.Target
		s.serializeMoves(s.Knight, from, knightMoves)
	}
}

func (s *moveGenState) appendBishopMoves() {
	s.appendBishopTypeMoves(s.Bishop, s.BishopsBB(s.Us))
}

func (s *moveGenState) appendRookMoves() {
	s.appendRookTypeMoves(s.Rook, s.RooksBB(s.Us))
}

func (s *moveGenState) appendQueenMoves() {
	queens := s.QueensBB(s.Us)
	s.appendBishopTypeMoves(s.Queen, queens)
	s.appendRookTypeMoves(s.Queen, queens)
}

// appendBishopTypeMoves appends the moves of pieces that move like a bishop.
func (s *moveGenState) appendBishopTypeMoves(p piece.Piece, bishops bitboard.Board) {
	bishops &^= s.PinnedHV

	pinned := bishops & s.PinnedD
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		// a pinned bishop may only move within its own pin-ray
		moves := attacks.Bishop(from, s.Occupied) & s.Target & s.PinnedD
		s.serializeMoves(p, from, moves)
	}

	unpinned := bishops &^ s.PinnedD
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		moves := attacks.Bishop(from, s.Occupied) & s.Target
		s.serializeMoves(p, from, moves)
	}
}

// appendRookTypeMoves appends the moves of pieces that move like a rook.
func (s *moveGenState) appendRookTypeMoves(p piece.Piece, rooks bitboard.Board) {
	rooks &^= s.PinnedD

	pinned := rooks & s.PinnedHV
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		moves := attacks.Rook(from, s.Occupied) & s.Target & s.PinnedHV
		s.serializeMoves(p, from, moves)
	}

	unpinned := rooks &^ s.PinnedHV
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		moves := attacks.Rook(from, s.Occupied) & s.Target
		s.serializeMoves(p, from, moves)
	}
}

func (s *moveGenState) appendPawnMoves() {
	pushTarget := s.CheckMask &^ s.Occupied
	captureTarget := s.Enemies & s.CheckMask

	pawns := s.PawnsBB(s.Us)
	pawnsThatAttack := pawns &^ s.PinnedHV

	unpinnedPawnsThatAttack := pawnsThatAttack &^ s.PinnedD
	pinnedPawnsThatAttack := pawnsThatAttack & s.PinnedD

	pawnAttacksL := attacks.PawnsLeft(unpinnedPawnsThatAttack, s.Us) & captureTarget
	pawnAttacksL |= attacks.PawnsLeft(pinnedPawnsThatAttack, s.Us) & captureTarget & s.PinnedD

	pawnAttacksR := attacks.PawnsRight(unpinnedPawnsThatAttack, s.Us) & captureTarget
	pawnAttacksR |= attacks.PawnsRight(pinnedPawnsThatAttack, s.Us) & captureTarget & s.PinnedD

	left, right := s.Down-1, s.Down+1

	simpleAttacksL := pawnAttacksL &^ s.PromotionRankBB
	simpleAttacksR := pawnAttacksR &^ s.PromotionRankBB

	for simpleAttacksL != bitboard.Empty {
		to := simpleAttacksL.Pop()
		s.AppendMoves(move.New(to+right, to, s.Pawn, true))
	}

	for simpleAttacksR != bitboard.Empty {
		to := simpleAttacksR.Pop()
		s.AppendMoves(move.New(to+left, to, s.Pawn, true))
	}

	promotionAttacksL := pawnAttacksL & s.PromotionRankBB
	promotionAttacksR := pawnAttacksR & s.PromotionRankBB

	for promotionAttacksL != bitboard.Empty {
		to := promotionAttacksL.Pop()
		s.appendPromotions(move.New(to+right, to, s.Pawn, true))
	}

	for promotionAttacksR != bitboard.Empty {
		to := promotionAttacksR.Pop()
		s.appendPromotions(move.New(to+left, to, s.Pawn, true))
	}

	if !s.TacticalOnly {
		s.appendPawnPushes(pushTarget)
	} else {
		// quiescence search still considers promotions by push
		s.appendPromotionPushes(pushTarget)
	}

	s.appendEnPassant(pawnsThatAttack)
}

func (s *moveGenState) appendPawnPushes(pushTarget bitboard.Board) {
	pawnsThatPush := s.PawnsBB(s.Us) &^ s.PinnedD

	unpinnedPawnsThatPush := pawnsThatPush &^ s.PinnedHV
	pinnedPawnsThatPush := pawnsThatPush & s.PinnedHV

	pushesSingleUnpinned := attacks.PawnPush(unpinnedPawnsThatPush, s.Us)
	pushesSinglePinned := attacks.PawnPush(pinnedPawnsThatPush, s.Us) & s.PinnedHV

	pushesSingle := (pushesSinglePinned | pushesSingleUnpinned) &^ s.Occupied

	pushesDouble := attacks.PawnPush(pushesSingle&s.DoublePushRankBB, s.Us) & pushTarget

	pushesSingle &= pushTarget

	simplePushes := pushesSingle &^ s.PromotionRankBB

	for simplePushes != bitboard.Empty {
		to := simplePushes.Pop()
		s.AppendMoves(move.New(to+s.Down, to, s.Pawn, false))
	}

	for pushesDouble != bitboard.Empty {
		to := pushesDouble.Pop()
		s.AppendMoves(move.New(to+s.Down+s.Down, to, s.Pawn, false))
	}

	promotionPushes := pushesSingle & s.PromotionRankBB
	for promotionPushes != bitboard.Empty {
		to := promotionPushes.Pop()
		s.appendPromotions(move.New(to+s.Down, to, s.Pawn, false))
	}
}

// appendPromotionPushes generates only the promoting single pushes,
// used by quiescence search's tactical-only generation.
func (s *moveGenState) appendPromotionPushes(pushTarget bitboard.Board) {
	pawnsThatPush := s.PawnsBB(s.Us) &^ (s.PinnedD | s.PinnedHV)
	pushesSingle := attacks.PawnPush(pawnsThatPush, s.Us) &^ s.Occupied & pushTarget
	promotionPushes := pushesSingle & s.PromotionRankBB

	for promotionPushes != bitboard.Empty {
		to := promotionPushes.Pop()
		s.appendPromotions(move.New(to+s.Down, to, s.Pawn, false))
	}
}

func (s *moveGenState) appendEnPassant(pawnsThatAttack bitboard.Board) {
	if s.EnPassantTarget == square.None {
		return
	}

	epPawn := s.EnPassantTarget + s.Down
	them := s.Them

	epMask := bitboard.Squares[s.EnPassantTarget] | bitboard.Squares[epPawn]
	// an ep capture that doesn't address an existing check can't be legal
	if s.CheckMask&epMask == 0 {
		return
	}

	kingSq := s.Kings[s.Us]
	kingMask := bitboard.Squares[kingSq] & s.EnPassantRankBB
	enemyRooksQueens := (s.RooksBB(them) | s.QueensBB(them)) & s.EnPassantRankBB

	// if the king and an enemy rook/queen share the ep rank, removing
	// both pawns could expose a horizontal pin not caught by the normal
	// pin-mask (which doesn't model two pieces disappearing at once).
	isPossiblePin := kingMask != bitboard.Empty && enemyRooksQueens != bitboard.Empty

	for fromBB := attacks.Pawn[them][s.EnPassantTarget] & pawnsThatAttack; fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if s.PinnedD.IsSet(from) && !s.PinnedD.IsSet(s.EnPassantTarget) {
			continue
		}

		pawnsMask := bitboard.Squares[from] | bitboard.Squares[epPawn]
		if isPossiblePin && attacks.Rook(kingSq, s.Occupied&^pawnsMask)&enemyRooksQueens != 0 {
			continue
		}

		s.AppendMoves(move.New(from, s.EnPassantTarget, s.Pawn, true))
	}
}

func (s *moveGenState) appendCastlingMoves() {
	// for each side: the right to castle must remain, the squares
	// between king and rook must be empty, and the squares the king
	// passes through (including its destination) must not be attacked.
	switch s.Us {
	case piece.White:
		if s.CastlingRights&castling.WhiteKingside != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F1G1 == bitboard.Empty {
			s.AppendMoves(move.New(square.E1, square.G1, piece.WhiteKing, false))
		}

		if s.CastlingRights&castling.WhiteQueenside != 0 &&
			s.Occupied&bitboard.B1C1D1 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C1D1 == bitboard.Empty {
			s.AppendMoves(move.New(square.E1, square.C1, piece.WhiteKing, false))
		}

	case piece.Black:
		if s.CastlingRights&castling.BlackKingside != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F8G8 == bitboard.Empty {
			s.AppendMoves(move.New(square.E8, square.G8, piece.BlackKing, false))
		}

		if s.CastlingRights&castling.BlackQueenside != 0 &&
			s.Occupied&bitboard.B8C8D8 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C8D8 == bitboard.Empty {
			s.AppendMoves(move.New(square.E8, square.C8, piece.BlackKing, false))
		}
	}
}

// serializeMoves appends a move for every bit set in moves, moving p
// from the given square.
func (s *moveGenState) serializeMoves(p piece.Piece, from square.Square, moves bitboard.Board) {
	for toBB := moves; toBB != bitboard.Empty; {
		to := toBB.Pop()
		s.AppendMoves(move.New(from, to, p, s.Enemies.IsSet(to)))
	}
}

func (s *moveGenState) appendPromotions(m move.Move) {
	c := s.Us
	s.AppendMoves(
		m.SetPromotion(piece.New(piece.Queen, c)),
		m.SetPromotion(piece.New(piece.Rook, c)),
		m.SetPromotion(piece.New(piece.Bishop, c)),
		m.SetPromotion(piece.New(piece.Knight, c)),
	)
}
