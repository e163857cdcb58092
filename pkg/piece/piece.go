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

// Package piece implements representations of all the chess pieces and
// colors, and related utility functions.
//
// The King, Queen, Rook, Knight, Bishop, and Pawn are represented by the
// K, Q, R, N, B, and P strings respectively, with uppercase for white and
// lower case for black.
package piece

import (
	"errors"
	"fmt"
)

// ErrInvalidPiece is returned by NewFromString when given anything
// other than one of the twelve piece letters.
var ErrInvalidPiece = errors.New("piece: invalid piece id")

// New creates a new Piece with the given type and color.
func New(t Type, c Color) Piece {
	return Piece(c)<<colorOffset | Piece(t)
}

// NewFromString creates an instance of Piece from the given piece id.
func NewFromString(id string) (Piece, error) {
	switch id {
	case "K":
		return WhiteKing, nil
	case "Q":
		return WhiteQueen, nil
	case "R":
		return WhiteRook, nil
	case "N":
		return WhiteKnight, nil
	case "B":
		return WhiteBishop, nil
	case "P":
		return WhitePawn, nil
	case "k":
		return BlackKing, nil
	case "q":
		return BlackQueen, nil
	case "r":
		return BlackRook, nil
	case "n":
		return BlackKnight, nil
	case "b":
		return BlackBishop, nil
	case "p":
		return BlackPawn, nil
	default:
		return NoPiece, fmt.Errorf("%w %q", ErrInvalidPiece, id)
	}
}

// Piece represents a colored chess piece.
// Format: MSB [color 1 bit][type 3 bits] LSB
type Piece uint8

// constants representing colored chess pieces.
const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(White)<<colorOffset | Piece(Pawn)
	WhiteKnight Piece = Piece(White)<<colorOffset | Piece(Knight)
	WhiteBishop Piece = Piece(White)<<colorOffset | Piece(Bishop)
	WhiteRook   Piece = Piece(White)<<colorOffset | Piece(Rook)
	WhiteQueen  Piece = Piece(White)<<colorOffset | Piece(Queen)
	WhiteKing   Piece = Piece(White)<<colorOffset | Piece(King)

	BlackPawn   Piece = Piece(Black)<<colorOffset | Piece(Pawn)
	BlackKnight Piece = Piece(Black)<<colorOffset | Piece(Knight)
	BlackBishop Piece = Piece(Black)<<colorOffset | Piece(Bishop)
	BlackRook   Piece = Piece(Black)<<colorOffset | Piece(Rook)
	BlackQueen  Piece = Piece(Black)<<colorOffset | Piece(Queen)
	BlackKing   Piece = Piece(Black)<<colorOffset | Piece(King)
)

// N is the number of piece-color combinations. Ideally 6x2 = 12, but
// bloated to 16 since color and type occupy separate bit ranges for
// cheap extraction.
const N = 16

const (
	colorOffset = 3
	typeMask    = (1 << colorOffset) - 1
)

// String converts a Piece into its string representation: upper case
// letters for white pieces, lower case for black.
func (p Piece) String() string {
	const pieceToStr = " PNBRQK  pnbrqk"
	return string(pieceToStr[p])
}

// Type returns the piece type of the given Piece.
func (p Piece) Type() Type {
	return Type(p & typeMask)
}

// Color returns the piece color of the given Piece.
func (p Piece) Color() Color {
	return Color(p >> colorOffset)
}

// Is checks if the type of the given Piece matches the given type.
func (p Piece) Is(target Type) bool {
	return p.Type() == target
}

// IsColor checks if the color of the given Piece matches the given Color.
func (p Piece) IsColor(target Color) bool {
	return p.Color() == target
}

// Type represents the type/kind of a chess piece.
type Type uint8

// constants representing chess piece types.
const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// TypeN is the number of chess piece types, including NoType.
const TypeN = 7

// String converts a Type into its string representation.
func (t Type) String() string {
	const typeToStr = " pnbrqk"
	return string(typeToStr[t])
}
