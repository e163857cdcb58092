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

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"shardchess.dev/x/core/internal/cli"
	"shardchess.dev/x/core/pkg/board"
)

// startFEN is the standard starting position, space-joined as board.Perft
// expects.
const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// kiwipeteFEN is the standard move-generator torture position.
const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// perftCase is one published (position, depth, expected node count)
// triple checked by "shard perft" with no arguments.
type perftCase struct {
	label string
	fen   string
	depth int
	nodes int64
}

var perftSuite = []perftCase{
	{"startpos d1", startFEN, 1, 20},
	{"startpos d2", startFEN, 2, 400},
	{"startpos d3", startFEN, 3, 8902},
	{"startpos d4", startFEN, 4, 197281},
	{"kiwipete d1", kiwipeteFEN, 1, 48},
	{"kiwipete d2", kiwipeteFEN, 2, 2039},
	{"endgame d2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
	{"castling d2", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
	{"promotion d2", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2, 1486},
}

// runPerft runs the published perft suite with no arguments, or
// "shard perft <fen...> <depth>" against a single custom position.
func runPerft(args []string) error {
	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return runPerftSuite()
	}

	if len(rest) < 2 {
		return fmt.Errorf("perft: usage: shard perft <fen> <depth>")
	}

	fen := rest[:len(rest)-1]
	var depth int
	if _, err := fmt.Sscanf(rest[len(rest)-1], "%d", &depth); err != nil {
		return fmt.Errorf("perft: invalid depth %q", rest[len(rest)-1])
	}

	start := time.Now()
	nodes, err := board.Perft(joinFEN(fen), depth)
	if err != nil {
		return fmt.Errorf("perft: %w", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("nodes %d time %s nps %.f\n", nodes, elapsed, float64(nodes)/elapsed.Seconds())
	return nil
}

func runPerftSuite() error {
	failures := 0
	for _, c := range perftSuite {
		nodes, err := board.Perft(c.fen, c.depth)
		if err != nil {
			return fmt.Errorf("perft: %s: %w", c.label, err)
		}
		got := int64(nodes)
		fmt.Println(cli.Pass(os.Stdout, c.label, c.nodes, got))
		if got != c.nodes {
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("perft: %d/%d cases failed", failures, len(perftSuite))
	}
	return nil
}

func joinFEN(fields []string) string {
	out := fields[0]
	for _, f := range fields[1:] {
		out += " " + f
	}
	return out
}
