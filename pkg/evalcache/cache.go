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

// Package evalcache caches static evaluations keyed by position hash,
// separate from the transposition table so a cheap evaluation lookup
// never has to contend with deeper search bookkeeping.
package evalcache

import (
	"math/bits"
	"unsafe"

	"shardchess.dev/x/core/pkg/eval"
	"shardchess.dev/x/core/pkg/zobrist"
)

type entry struct {
	hash   zobrist.Key
	value  eval.Eval
	filled bool // distinguishes a real hash-0 entry from an empty slot
}

var entrySize = int(unsafe.Sizeof(entry{}))

// NewCache creates an evaluation cache sized to the nearest power of
// two number of entries fitting in the given number of megabytes.
func NewCache(sizeMB int) *Cache {
	size := nextPowerOfTwo((sizeMB * 1024 * 1024) / entrySize)
	if size == 0 {
		size = 1
	}

	return &Cache{
		entries: make([]entry, size),
		mask:    uint64(size) - 1,
	}
}

// Cache is a direct-mapped, power-of-two-capacity evaluation cache.
type Cache struct {
	entries []entry
	mask    uint64
}

// Clear empties every entry of the cache.
func (c *Cache) Clear() {
	clear(c.entries)
}

// Get returns the cached evaluation for hash, if present.
//
// filled guards against the zero value of entry matching an
// unrelated, never-stored zobrist.Key of 0: without it, the slot's
// zero-initialized hash would look like a hit for the very first
// position that ever hashes to exactly 0.
func (c *Cache) Get(hash zobrist.Key) (eval.Eval, bool) {
	e := &c.entries[hash&zobrist.Key(c.mask)]
	if e.filled && e.hash == hash {
		return e.value, true
	}
	return 0, false
}

// Store caches value as the evaluation of hash, overwriting whatever
// previously occupied the slot.
func (c *Cache) Store(hash zobrist.Key, value eval.Eval) {
	c.entries[hash&zobrist.Key(c.mask)] = entry{hash: hash, value: value, filled: true}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return n
	}
	return 1 << bits.Len(uint(n-1))
}
