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

	"shardchess.dev/x/core/internal/datagen"
)

// runDatagen runs "shard datagen -pgn <dir> -output <path>", labeling
// quiet positions from a directory of PGN archives for internal/tuner.
func runDatagen(args []string) error {
	fs := flag.NewFlagSet("datagen", flag.ExitOnError)
	pgnDir := fs.String("pgn", "./data/pgn", "directory of *.pgn archives to scan")
	output := fs.String("output", "data.fen", "labeled FEN dataset output path")
	nodes := fs.Int("nodes", 5000, "per-position quiet-search node budget")
	depth := fs.Int("depth", 6, "per-position quiet-search depth budget")

	if err := fs.Parse(args); err != nil {
		return err
	}

	return datagen.Run(datagen.Config{
		PGNDir: *pgnDir,
		Output: *output,
		Nodes:  *nodes,
		Depth:  *depth,
	})
}
