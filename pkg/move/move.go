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

// Package move implements a compact move representation and the
// move-list utilities (scoring, ordering, variations) built on top of
// it.
package move

import (
	"fmt"

	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// A Move is a compact, 32-bit representation of a chess move.
//
//	[ isCapture 1 ] [ toPiece 4 ] [ fromPiece 4 ] [ target 6 ] [ source 6 ]
type Move uint32

const (
	sourceBits = 6
	targetBits = 6
	fromBits   = 4
	toBits     = 4

	sourceOffset = 0
	targetOffset = sourceOffset + sourceBits
	fromOffset   = targetOffset + targetBits
	toOffset     = fromOffset + fromBits
	captureBit   = toOffset + toBits

	sourceMask = 1<<sourceBits - 1
	targetMask = 1<<targetBits - 1
	fromMask   = 1<<fromBits - 1
	toMask     = 1<<toBits - 1
)

// Null represents the absence of a move.
const Null Move = 0

// MaxN is an upper bound on the number of moves in any legal position.
const MaxN = 1024

// New creates a new Move from the given source, target, moving piece,
// and capture flag. The destination piece starts out equal to the
// moving piece; use SetPromotion to change it for a promotion move.
func New(source, target square.Square, from piece.Piece, isCapture bool) Move {
	m := Move(source)<<sourceOffset |
		Move(target)<<targetOffset |
		Move(from)<<fromOffset |
		Move(from)<<toOffset

	if isCapture {
		m |= 1 << captureBit
	}

	return m
}

// SetPromotion returns a copy of m with its destination piece changed
// to the given promotion piece.
func (m Move) SetPromotion(to piece.Piece) Move {
	return m&^(toMask<<toOffset) | Move(to)<<toOffset
}

// Source returns the move's source square.
func (m Move) Source() square.Square {
	return square.Square(m >> sourceOffset & sourceMask)
}

// Target returns the move's target square.
func (m Move) Target() square.Square {
	return square.Square(m >> targetOffset & targetMask)
}

// FromPiece returns the piece that is moving.
func (m Move) FromPiece() piece.Piece {
	return piece.Piece(m >> fromOffset & fromMask)
}

// ToPiece returns the piece on the move's target square after the move
// is made: the moving piece itself, unless the move is a promotion.
func (m Move) ToPiece() piece.Piece {
	return piece.Piece(m >> toOffset & toMask)
}

// IsCapture reports whether the move captures a piece, including an
// en passant capture.
func (m Move) IsCapture() bool {
	return m&(1<<captureBit) != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.FromPiece().Type() != m.ToPiece().Type()
}

// IsEnPassant reports whether the move is an en passant capture, given
// the en passant target square of the position it is played in.
func (m Move) IsEnPassant(epTarget square.Square) bool {
	return m.FromPiece().Type() == piece.Pawn && m.Target() == epTarget && m.IsCapture()
}

// IsQuiet reports whether the move is neither a capture nor a
// promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsReversible reports whether the move is reversible for the
// purposes of the fifty-move rule: captures and pawn moves reset the
// counter, everything else doesn't.
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.FromPiece().Type() != piece.Pawn
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	switch m.FromPiece() {
	case piece.WhiteKing:
		return m.Source() == square.E1 && (m.Target() == square.G1 || m.Target() == square.C1)
	case piece.BlackKing:
		return m.Source() == square.E8 && (m.Target() == square.G8 || m.Target() == square.C8)
	default:
		return false
	}
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	if m.FromPiece().Type() != piece.Pawn {
		return false
	}

	fromRank, toRank := m.Source().Rank(), m.Target().Rank()
	return (fromRank == square.Rank2 && toRank == square.Rank4) ||
		(fromRank == square.Rank7 && toRank == square.Rank5)
}

// String converts the move into coordinate notation, e.g. "e2e4" or
// "e7e8q" for a promotion. The null move is represented as "0000".
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	str := m.Source().String() + m.Target().String()
	if m.IsPromotion() {
		str += m.ToPiece().Type().String()
	}

	return str
}

// GoString implements fmt.GoStringer for debugging.
func (m Move) GoString() string {
	return fmt.Sprintf("move.Move(%s)", m.String())
}
