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

// Package bitboard implements a 64-bit bitboard and the related
// primitives (shifts, masks, population count, hyperbola quintessence
// sliding attacks) used throughout move generation and evaluation.
package bitboard

import (
	"math/bits"

	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
)

// Board is a 64-bit bitboard; bit 8*rank+file is square (file, rank).
type Board uint64

// String returns a human readable 8x8 representation of the board.
func (b Board) String() string {
	var str string
	for s := square.A8; s <= square.H1; s++ {
		if b.IsSet(s) {
			str += "1"
		} else {
			str += "0"
		}

		if s.File() == square.FileH {
			str += "\n"
		} else {
			str += " "
		}
	}

	return str
}

// Up shifts the given bitboard up, relative to the given color.
func (b Board) Up(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.North()
	default:
		return b.South()
	}
}

// Down shifts the given bitboard down, relative to the given color.
func (b Board) Down(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.South()
	default:
		return b.North()
	}
}

// North shifts the given bitboard towards rank 8.
func (b Board) North() Board {
	return b >> 8
}

// South shifts the given bitboard towards rank 1.
func (b Board) South() Board {
	return b << 8
}

// East shifts the given bitboard towards file H, masking file-A wraparound.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the given bitboard towards file A, masking file-H wraparound.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Pop returns the least significant set bit's square and clears it.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set bits (population count).
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the least significant set bit's square. Undefined
// for an empty bitboard.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether the given square is set.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets the given square. A no-op for square.None.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}

	*b |= Squares[s]
}

// Unset clears the given square. A no-op for square.None.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}

	*b &^= Squares[s]
}
