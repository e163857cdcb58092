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

// Package search implements iterative-deepening alpha-beta search over
// a board, including aspiration windows, principal variation search,
// quiescence, and the move-ordering heuristics that feed it.
package search

import (
	"errors"
	"time"

	"shardchess.dev/x/core/internal/util"
	"shardchess.dev/x/core/pkg/board"
	"shardchess.dev/x/core/pkg/eval"
	"shardchess.dev/x/core/pkg/evalcache"
	"shardchess.dev/x/core/pkg/move"
	searchtime "shardchess.dev/x/core/pkg/search/time"
	"shardchess.dev/x/core/pkg/tt"
)

// MaxDepth is the maximum depth (in plys) that a search will iterate
// to, and the size of the per-ply killer-move and PV tables.
const MaxDepth = 256

// NewContext creates a new search Context over board, allocating a
// transposition table and evaluation cache of the given sizes.
func NewContext(b *board.Board, ttSizeMB, evalCacheSizeMB int) *Context {
	return &Context{
		Board:     b,
		tt:        tt.NewTable(ttSizeMB),
		evalCache: evalcache.NewCache(evalCacheSizeMB),
		stopped:   true,
	}
}

// Context stores the tables, state, and statistics for a particular
// search. Between searches of the same game, reuse the Context (and
// therefore its tables) by swapping out Board; start a new Context for
// an unrelated game so stale history/killer data can't bleed in.
type Context struct {
	Board *board.Board

	tt        *tt.Table
	evalCache *evalcache.Cache

	killers [MaxDepth][2]move.Move
	history historyTable

	depth   int
	stopped bool

	nodes    int
	ttHits   int
	selDepth int
	qsRoot   int // ply quiescence was entered at, bounds its recursion

	pv      move.Variation
	pvScore eval.Eval

	limits Limits
	start  time.Time

	// OnReport, if set, is called with a Report after every completed
	// iterative-deepening depth. The UCI "go" command points it at the
	// client's stdout; cmd/shard/watch points it at a live dashboard
	// instead. A nil OnReport silently drops reports.
	OnReport func(Report)
}

// report delivers r to OnReport if one is set.
func (c *Context) report(r Report) {
	if c.OnReport != nil {
		c.OnReport(r)
	}
}

// Search initializes the context for a new search and runs iterative
// deepening. It reports an error without searching if the side not to
// move is already in check, since that position could only be reached
// by an illegal king capture.
func (c *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	if c.Board.IsInCheck(c.Board.SideToMove.Other()) {
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal, side not to move is in check")
	}

	c.startSearch(limits)
	defer c.Stop()

	c.iterativeDeepening()
	return c.pv, c.pvScore, nil
}

// InProgress reports whether a search is currently running on c.
func (c *Context) InProgress() bool {
	return !c.stopped
}

// Stop signals any ongoing search on c to return as soon as possible,
// reporting the best line completed so far.
func (c *Context) Stop() {
	c.stopped = true
}

// NewGame resets every table that shouldn't persist across a new game:
// the transposition table and eval cache are cleared, and the killer
// and history tables are zeroed.
func (c *Context) NewGame() {
	c.tt.Clear()
	c.evalCache.Clear()
	c.killers = [MaxDepth][2]move.Move{}
	c.history = historyTable{}
}

// ResizeTT rebuilds the transposition table at the given size in
// megabytes, dropping any entries that no longer fit.
func (c *Context) ResizeTT(sizeMB int) {
	c.tt.Resize(sizeMB)
}

// UpdateLimits swaps in new search limits for an in-progress search,
// starting a fresh deadline against the new time manager. It is used to
// switch a ponder search over to normal limits on a "ponderhit".
func (c *Context) UpdateLimits(limits Limits) {
	c.limits = limits
	if c.limits.Time != nil {
		c.limits.Time.GetDeadline()
	}
}

// String renders the context's current board, for the "d" debug command.
func (c *Context) String() string {
	return c.Board.String()
}

func (c *Context) startSearch(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	if limits.Depth == 0 {
		limits.Depth = MaxDepth
	}
	c.limits = limits

	c.nodes = 0
	c.ttHits = 0
	c.selDepth = 0
	c.pv.Clear()

	c.start = time.Now()
	c.stopped = false
	c.tt.NextEpoch()
	c.killers = [MaxDepth][2]move.Move{}

	if c.limits.Time != nil {
		c.limits.Time.GetDeadline()
	}
}

// shouldStop reports whether some search limit has been breached and,
// if so, flips the stop flag. Node/time limits are only checked every
// few nodes to keep the check itself cheap.
func (c *Context) shouldStop() bool {
	switch {
	case c.stopped:
		return true

	case c.nodes&2047 != 0, c.limits.Infinite:
		return false

	case c.limits.Nodes != 0 && c.nodes > c.limits.Nodes:
		c.Stop()
		return true

	case c.limits.Time != nil && c.limits.Time.Expired():
		c.Stop()
		return true

	default:
		return false
	}
}

// evaluate returns the static evaluation of the current position,
// consulting the evaluation cache before falling back to pkg/eval.
func (c *Context) evaluate() eval.Eval {
	if score, hit := c.evalCache.Get(c.Board.Hash); hit {
		return score
	}

	score := eval.Evaluate(c.Board)
	c.evalCache.Store(c.Board.Hash, score)
	return score
}

// draw returns a lightly randomized draw score so the search doesn't
// treat every drawn line as equally attractive, which would otherwise
// make it blind to a non-drawing improvement of identical static value.
func (c *Context) draw() eval.Eval {
	return eval.RandDraw(c.nodes)
}

// Limits bounds how long and how deep a search may run.
type Limits struct {
	Nodes int // 0 means unbounded
	Depth int // 0 means MaxDepth

	Infinite bool
	Time     searchtime.Manager
}
