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

package search_test

import (
	"testing"

	"shardchess.dev/x/core/pkg/board"
	"shardchess.dev/x/core/pkg/eval"
	"shardchess.dev/x/core/pkg/move"
	"shardchess.dev/x/core/pkg/search"
)

// TestSearchFindsMateInOne checks that a fixed-depth search reports a
// mate score and a principal variation starting with the only
// mating move in a simple back-rank position.
func TestSearchFindsMateInOne(t *testing.T) {
	// white to move, rook delivers mate on the back rank
	b, err := board.New("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	c := search.NewContext(b, 1, 1)

	pv, score, err := c.Search(search.Limits{Depth: 3})
	if err != nil {
		t.Fatalf("Search returned an error: %v", err)
	}
	best := pv.Move(0)
	if best == move.Null {
		t.Fatal("Search returned an empty principal variation")
	}
	if score <= eval.Mate-100 {
		t.Errorf("Search score = %d, want a near-mate score for a forced mate in 1", score)
	}
	if best.String() != "a1a8" {
		t.Errorf("Search's best move = %s, want a1a8", best)
	}
}

// TestSearchRespectsNodeLimit checks that a search bounded by a small
// node budget actually stops instead of running to full depth.
func TestSearchRespectsNodeLimit(t *testing.T) {
	b, err := board.New("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	c := search.NewContext(b, 1, 1)

	_, _, err = c.Search(search.Limits{Nodes: 1000, Depth: 64})
	if err != nil {
		t.Fatalf("Search returned an error: %v", err)
	}
	if c.InProgress() {
		t.Error("search is still marked in progress after Search returned")
	}
}
