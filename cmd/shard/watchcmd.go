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
	"strings"

	"shardchess.dev/x/core/cmd/shard/watch"
	"shardchess.dev/x/core/pkg/board"
)

// runWatch runs "shard watch [-fen <fen>] [-depth N]", opening a
// termui dashboard over a single search.
func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	fen := fs.String("fen", strings.Join(board.StartFEN, " "), "position to search, as a FEN string")
	depth := fs.Int("depth", 0, "depth limit (0 means unbounded, stop with q)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	return watch.Run(*fen, *depth)
}
