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
	"fmt"
	"strconv"
	"strings"

	"shardchess.dev/x/core/pkg/castling"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/square"
	"shardchess.dev/x/core/pkg/zobrist"
)

// StartFEN is the FEN of the standard chess starting position, split
// into its six whitespace-separated fields.
var StartFEN = strings.Fields("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

// New creates a *Board from a FEN string, or reports ErrInvalidFEN if
// it is malformed.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func New(fen string) (*Board, error) {
	return NewBoard(strings.Fields(fen))
}

// NewBoard creates a *Board from a FEN string already split into its
// six fields, or reports ErrInvalidFEN if it is malformed.
func NewBoard(fen []string) (*Board, error) {
	if len(fen) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFEN, len(fen))
	}

	var board Board

	// side to move
	sideToMove, err := piece.NewColor(fen[1])
	if err != nil {
		return nil, fmt.Errorf("%w: side to move: %v", ErrInvalidFEN, err)
	}
	board.SideToMove = sideToMove
	if board.SideToMove == piece.Black {
		board.Hash ^= zobrist.SideToMove
	}

	// piece placement
	ranks := strings.Split(fen[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: piece placement %q has %d ranks, want 8", ErrInvalidFEN, fen[0], len(ranks))
	}
	for rankID, rankData := range ranks {
		fileID := square.FileA
		for _, id := range rankData {
			if fileID > square.FileH {
				return nil, fmt.Errorf("%w: piece placement %q overflows rank %d", ErrInvalidFEN, fen[0], rankID+1)
			}

			s := square.New(fileID, square.Rank(rankID))

			if id >= '1' && id <= '8' {
				skip := square.File(id - '0')
				fileID += skip
				continue
			}

			p, err := piece.NewFromString(string(id))
			if err != nil {
				return nil, fmt.Errorf("%w: piece placement: %v", ErrInvalidFEN, err)
			}
			board.FillSquare(s, p)

			fileID++
		}
		if fileID != square.FileH+1 {
			return nil, fmt.Errorf("%w: piece placement %q rank %d does not cover 8 files", ErrInvalidFEN, fen[0], rankID+1)
		}
	}

	// castling rights
	castlingRights, err := castling.NewRights(fen[2])
	if err != nil {
		return nil, fmt.Errorf("%w: castling rights: %v", ErrInvalidFEN, err)
	}
	board.CastlingRights = castlingRights
	board.Hash ^= zobrist.Castling[board.CastlingRights]

	// en passant target square
	epTarget, err := square.NewFromString(fen[3])
	if err != nil {
		return nil, fmt.Errorf("%w: en passant target: %v", ErrInvalidFEN, err)
	}
	board.EnPassantTarget = epTarget
	if board.EnPassantTarget != square.None {
		board.Hash ^= zobrist.EnPassant[board.EnPassantTarget.File()]
	}

	// move counters
	drawClock, err := strconv.Atoi(fen[4])
	if err != nil {
		return nil, fmt.Errorf("%w: halfmove clock: %v", ErrInvalidFEN, err)
	}
	board.DrawClock = drawClock

	fullMoves, err := strconv.Atoi(fen[5])
	if err != nil {
		return nil, fmt.Errorf("%w: fullmove number: %v", ErrInvalidFEN, err)
	}
	board.FullMoves = fullMoves

	return &board, nil
}

// FEN returns the FEN string of the current position.
func (b *Board) FEN() string {
	fen := b.Position.FEN() + " "
	fen += b.SideToMove.String() + " "
	fen += b.CastlingRights.String() + " "
	fen += b.EnPassantTarget.String() + " "
	fen += strconv.Itoa(b.DrawClock) + " "
	fen += strconv.Itoa(b.FullMoves)
	return fen
}
