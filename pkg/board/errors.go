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

package board

import "errors"

// ErrInvalidFEN is returned when a FEN string is malformed: the wrong
// number of fields, an unparsable piece placement, side-to-move,
// castling-rights, en passant, or move-counter field. Parsing never
// silently normalizes a bad field; it reports this error instead.
var ErrInvalidFEN = errors.New("board: invalid fen")

// ErrIllegalMove is returned by MakeMoveByCoords when the requested
// move does not appear in the legal move list of the current
// position. The board is left unmodified.
var ErrIllegalMove = errors.New("board: illegal move")
