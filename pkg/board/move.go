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

package board

import (
	"fmt"
	"strings"

	"shardchess.dev/x/core/internal/util"
	"shardchess.dev/x/core/pkg/attacks"
	"shardchess.dev/x/core/pkg/castling"
	"shardchess.dev/x/core/pkg/move"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
	"shardchess.dev/x/core/pkg/zobrist"
)

// MakeMove plays the given legal move on the Board.
func (b *Board) MakeMove(m move.Move) {
	b.History[b.Plys].Move = m
	b.History[b.Plys].CastlingRights = b.CastlingRights
	b.History[b.Plys].CapturedPiece = piece.NoPiece
	b.History[b.Plys].EnPassantTarget = b.EnPassantTarget
	b.History[b.Plys].DrawClock = b.DrawClock
	b.History[b.Plys].Hash = b.Hash

	// half-move clock: the number of plies since the last pawn push or
	// capture, used for the fifty-move draw rule.
	b.DrawClock++

	if m == move.Null {
		b.makeNullMove()
		return
	}

	sourceSq := m.Source()
	targetSq := m.Target()
	captureSq := targetSq
	fromPiece := m.FromPiece()
	pieceType := fromPiece.Type()
	toPiece := m.ToPiece()

	isDoublePush := pieceType == piece.Pawn && util.Abs(int(targetSq)-int(sourceSq)) == 16
	isCastling := pieceType == piece.King && util.Abs(int(targetSq)-int(sourceSq)) == 2
	isEnPassant := pieceType == piece.Pawn && targetSq == b.EnPassantTarget
	isCapture := m.IsCapture()

	if pieceType == piece.Pawn {
		b.DrawClock = 0
	}

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	switch {
	case isDoublePush:
		target := sourceSq
		if b.SideToMove == piece.White {
			target -= 8
		} else {
			target += 8
		}

		// only set the en passant square if an enemy pawn can actually
		// capture on it; an unreachable ep square must not perturb the
		// hash, or two otherwise-identical positions would diverge.
		if b.PawnsBB(b.SideToMove.Other())&attacks.Pawn[b.SideToMove][target] != 0 {
			b.EnPassantTarget = target
			b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
		}

	case isCastling:
		rookInfo := castling.Rooks[targetSq]
		b.ClearSquare(rookInfo.From)
		b.FillSquare(rookInfo.To, rookInfo.RookType)

	case isEnPassant:
		if b.SideToMove == piece.White {
			captureSq += 8
		} else {
			captureSq -= 8
		}
		fallthrough

	case isCapture:
		b.History[b.Plys].CapturedPiece = b.Position[captureSq]
		b.DrawClock = 0
		b.ClearSquare(captureSq)
	}

	b.ClearSquare(sourceSq)
	b.FillSquare(targetSq, toPiece)

	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights &^= castling.RightUpdates[sourceSq]
	b.CastlingRights &^= castling.RightUpdates[targetSq]
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.Plys++

	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

func (b *Board) makeNullMove() {
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	b.Plys++

	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

// UnmakeMove unmakes the last move played on the Board.
func (b *Board) UnmakeMove() {
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.Black {
		b.FullMoves--
	}

	b.Plys--

	b.EnPassantTarget = b.History[b.Plys].EnPassantTarget
	b.DrawClock = b.History[b.Plys].DrawClock
	b.CastlingRights = b.History[b.Plys].CastlingRights

	m := b.History[b.Plys].Move

	if m == move.Null {
		b.Hash = b.History[b.Plys].Hash
		return
	}

	sourceSq := m.Source()
	targetSq := m.Target()
	captureSq := targetSq
	fromPiece := m.FromPiece()
	pieceType := fromPiece.Type()
	capturedPiece := b.History[b.Plys].CapturedPiece

	isCastling := pieceType == piece.King && util.Abs(int(targetSq)-int(sourceSq)) == 2
	isEnPassant := pieceType == piece.Pawn && targetSq == b.EnPassantTarget
	isCapture := m.IsCapture()

	b.ClearSquare(targetSq)
	b.FillSquare(sourceSq, fromPiece)

	switch {
	case isCastling:
		rookInfo := castling.Rooks[targetSq]
		b.ClearSquare(rookInfo.To)
		b.FillSquare(rookInfo.From, rookInfo.RookType)

	case isEnPassant:
		if b.SideToMove == piece.White {
			captureSq += 8
		} else {
			captureSq -= 8
		}
		fallthrough

	case isCapture:
		b.FillSquare(captureSq, capturedPiece)
	}

	b.Hash = b.History[b.Plys].Hash
}

// NewMove builds a move.Move for moving the piece on from to to, filling
// in the context (moving piece, capture flag) from the current board.
// For a promotion, chain .SetPromotion on the result.
func (b *Board) NewMove(from, to square.Square) move.Move {
	p := b.Position[from]
	return move.New(from, to, p, b.Position[to] != piece.NoPiece)
}

// NewMoveFromString parses a move in coordinate notation (e.g. "e2e4",
// "e7e8q") in the context of the current board. It only validates the
// notation itself; the result may still not be a legal move in this
// position. Use MakeMoveByCoords to both parse and validate legality.
func (b *Board) NewMoveFromString(s string) (move.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return move.Null, fmt.Errorf("%w: %q is not coordinate notation", ErrIllegalMove, s)
	}

	from, err := square.NewFromString(s[:2])
	if err != nil {
		return move.Null, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	to, err := square.NewFromString(s[2:4])
	if err != nil {
		return move.Null, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}

	m := b.NewMove(from, to)
	if len(s) == 5 {
		pieceID := s[4:]
		if b.SideToMove == piece.White {
			pieceID = strings.ToUpper(pieceID)
		}

		promotion, err := piece.NewFromString(pieceID)
		if err != nil {
			return move.Null, fmt.Errorf("%w: %v", ErrIllegalMove, err)
		}
		m = m.SetPromotion(promotion)
	}

	return m, nil
}

// MakeMoveByCoords parses s as a coordinate move (e.g. "e2e4",
// "e7e8q") and plays it only if it appears in the current position's
// legal move list, returning the move played. On a parse failure or
// an illegal move it returns ErrIllegalMove and leaves the board
// untouched.
func (b *Board) MakeMoveByCoords(s string) (move.Move, error) {
	m, err := b.NewMoveFromString(s)
	if err != nil {
		return move.Null, err
	}

	for _, legal := range b.GenerateMoves() {
		if legal == m {
			b.MakeMove(legal)
			return legal, nil
		}
	}

	return move.Null, fmt.Errorf("%w: %q is not legal in this position", ErrIllegalMove, s)
}
