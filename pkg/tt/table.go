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

// Package tt implements a transposition table, caching results from
// previous searches of a position so that later searches reaching the
// same position through a different move order can reuse them.
package tt

import (
	"math/bits"
	"unsafe"

	"shardchess.dev/x/core/pkg/eval"
	"shardchess.dev/x/core/pkg/move"
	"shardchess.dev/x/core/pkg/zobrist"
)

// EntrySize is the size in bytes of a single tt entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// NewTable creates a transposition table sized to the nearest power
// of two number of entries fitting in the given number of megabytes.
func NewTable(sizeMB int) *Table {
	size := nextPowerOfTwo((sizeMB * 1024 * 1024) / EntrySize)
	if size == 0 {
		size = 1
	}

	return &Table{
		table: make([]Entry, size),
		mask:  uint64(size) - 1,
	}
}

// Table represents a transposition table.
type Table struct {
	table []Entry
	mask  uint64
	epoch uint8
}

// Clear empties every entry of the table.
func (tt *Table) Clear() {
	clear(tt.table)
}

// NextEpoch increases the epoch number of the table, ageing out
// entries stored by previous searches so fresh data can replace them.
func (tt *Table) NextEpoch() {
	tt.epoch++
}

// Resize rebuilds the table at the given size in megabytes, dropping
// any entries that no longer fit.
func (tt *Table) Resize(sizeMB int) {
	size := nextPowerOfTwo((sizeMB * 1024 * 1024) / EntrySize)
	if size == 0 {
		size = 1
	}

	newTable := make([]Entry, size)
	copy(newTable, tt.table)

	*tt = Table{
		table: newTable,
		mask:  uint64(size) - 1,
		epoch: tt.epoch,
	}
}

// Store puts the given entry into the table, replacing the existing
// occupant of its slot only if the new entry is of equal or higher
// quality (deeper, or from a more recent search).
func (tt *Table) Store(entry Entry) {
	target := tt.fetch(entry.Hash)
	entry.epoch = tt.epoch

	if entry.quality() >= target.quality() {
		*target = entry
	}
}

// Probe fetches the entry associated with the given hash. The second
// return value reports whether the entry is usable: present and not a
// collision with a different position hashing to the same slot.
func (tt *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := *tt.fetch(hash)
	return entry, entry.Type != NoEntry && entry.Hash == hash
}

// Hashfull estimates the fraction of the table currently occupied by
// entries from the current epoch, sampling the first 1000 slots (or
// all of them, if the table is smaller) rather than scanning the whole
// table on every report.
func (tt *Table) Hashfull() float64 {
	sample := len(tt.table)
	if sample > 1000 {
		sample = 1000
	}

	filled := 0
	for i := 0; i < sample; i++ {
		if tt.table[i].Type != NoEntry && tt.table[i].epoch == tt.epoch {
			filled++
		}
	}

	return float64(filled) / float64(sample)
}

func (tt *Table) fetch(hash zobrist.Key) *Entry {
	return &tt.table[tt.indexOf(hash)]
}

// indexOf maps a hash directly onto a table slot with a power-of-two
// mask rather than a multiplicative (Lemire) reduction.
func (tt *Table) indexOf(hash zobrist.Key) uint64 {
	return uint64(hash) & tt.mask
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return n
	}
	return 1 << bits.Len(uint(n-1))
}

// Entry represents a transposition table entry.
type Entry struct {
	Hash zobrist.Key // full hash of the position, to guard against collisions

	Move move.Move // best move found in the position, used as the pv move

	Value Eval      // value of this position
	Type  EntryType // bound type of the value

	Depth uint8 // depth the position was searched to
	epoch uint8 // epoch/age of the entry from creation
}

// quality measures whether an entry should replace the one already
// occupying its slot: newer and deeper searches win.
func (entry *Entry) quality() uint8 {
	return entry.epoch + entry.Depth/3
}

// EntryType represents the kind of bound a transposition table
// entry's value is, following the PV/Cut/All node vocabulary.
type EntryType uint8

// constants representing the transposition table entry types.
const (
	NoEntry EntryType = iota // no entry exists

	Exact      // the value is an exact score (a PV node)
	LowerBound // the value is a lower bound on the exact score (a Cut node)
	UpperBound // the value is an upper bound on the exact score (an All node)
)

// EvalFrom converts a mate score from "plys till mate from root" to
// "plys till mate from the current position" so it can be reused by
// searches at other depths.
func EvalFrom(score eval.Eval, plys int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(plys)
	}

	return Eval(score)
}

// Eval represents the evaluation stored in a transposition table
// entry. Mate scores store "plys till mate from current position"
// rather than the "plys till mate from root" search uses directly.
type Eval eval.Eval

// Eval converts a stored entry score back to "plys till mate from
// root", the format search operates on.
func (e Eval) Eval(plys int) eval.Eval {
	score := eval.Eval(e)

	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(plys)
	}

	return score
}
