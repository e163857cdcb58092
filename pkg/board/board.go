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

// Package board implements a complete chess board along with legal move
// generation, make/unmake, and other related utilities.
package board

import (
	"fmt"

	"shardchess.dev/x/core/pkg/attacks"
	"shardchess.dev/x/core/pkg/bitboard"
	"shardchess.dev/x/core/pkg/board/mailbox"
	"shardchess.dev/x/core/pkg/castling"
	"shardchess.dev/x/core/pkg/move"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
	"shardchess.dev/x/core/pkg/zobrist"
)

// Board represents the state of a chessboard at a given position.
type Board struct {
	// position data
	Hash     zobrist.Key
	Position mailbox.Board // 8x8 for fast lookup
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board

	Kings [piece.ColorN]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	// move counters
	Plys      int
	FullMoves int
	DrawClock int

	// game history, indexed by Plys, for unmake
	History [1024]Undo
}

// Undo stores the irreversible state needed to unmake a move.
type Undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	CapturedPiece   piece.Piece
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key
}

// String converts a Board into a human readable string.
func (b *Board) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %X\n", b.Position, b.FEN(), uint64(b.Hash))
}

// Occupied returns a bitboard of every occupied square.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// ClearSquare removes whatever piece sits on s, updating every board
// record including the zobrist hash.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]

	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)
	b.Position[s] = piece.NoPiece
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// FillSquare places p on s, updating every board record including the
// zobrist hash.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Color()
	t := p.Type()

	b.ColorBBs[c].Set(s)

	if t == piece.King {
		b.Kings[c] = s
	}

	b.PieceBBs[t].Set(s)
	b.Position[s] = p
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// IsInCheck reports whether c's king is in check.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked reports whether s is attacked by any of them's pieces.
func (b *Board) IsAttacked(s square.Square, them piece.Color) bool {
	occ := b.Occupied()

	if attacks.Pawn[them.Other()][s]&b.PawnsBB(them) != bitboard.Empty {
		return true
	}

	if attacks.Knight[s]&b.KnightsBB(them) != bitboard.Empty {
		return true
	}

	if attacks.King[s]&b.KingBB(them) != bitboard.Empty {
		return true
	}

	queens := b.QueensBB(them)

	if attacks.Bishop(s, occ)&(b.BishopsBB(them)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, occ)&(b.RooksBB(them)|queens) != bitboard.Empty
}

// PawnsBB returns a bitboard of c's pawns.
func (b *Board) PawnsBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Pawn] & b.ColorBBs[c]
}

// KnightsBB returns a bitboard of c's knights.
func (b *Board) KnightsBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Knight] & b.ColorBBs[c]
}

// BishopsBB returns a bitboard of c's bishops.
func (b *Board) BishopsBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Bishop] & b.ColorBBs[c]
}

// RooksBB returns a bitboard of c's rooks.
func (b *Board) RooksBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Rook] & b.ColorBBs[c]
}

// QueensBB returns a bitboard of c's queens.
func (b *Board) QueensBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Queen] & b.ColorBBs[c]
}

// KingBB returns a bitboard of c's king.
func (b *Board) KingBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.King] & b.ColorBBs[c]
}

// IsDraw reports whether the current position is a draw by the fifty
// move rule or threefold repetition. It does not detect draws by
// insufficient material, which are rare enough in practice that the
// static evaluation handles them well without special-casing.
func (b *Board) IsDraw() bool {
	if b.DrawClock >= 100 {
		return true
	}

	// only positions since the last irreversible move (capture, pawn
	// push, or loss of castling rights) can repeat this one, and that
	// span is exactly DrawClock plies of history
	count := 1
	for plys := b.Plys - 2; plys >= b.Plys-b.DrawClock && plys >= 0; plys -= 2 {
		if b.History[plys].Hash == b.Hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}

	return false
}
