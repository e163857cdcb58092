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

// Package engine wires a search.Context and its UCI options into a
// pkg/uci.Client, gluing together the "go"/"position"/"setoption" family
// of commands that make up a playable engine.
package engine

import (
	"shardchess.dev/x/core/internal/engine/cmd"
	"shardchess.dev/x/core/internal/engine/context"
	"shardchess.dev/x/core/internal/engine/options"
	"shardchess.dev/x/core/pkg/board"
	"shardchess.dev/x/core/pkg/search"
	"shardchess.dev/x/core/pkg/uci"
	"shardchess.dev/x/core/pkg/uci/option"
)

// defaultTableSizeMB is the transposition table size a fresh engine
// boots with, before the GUI has had a chance to send "setoption name
// Hash value ...".
const defaultTableSizeMB = 16

// defaultEvalCacheSizeMB is fixed rather than exposed as a UCI option:
// it is small relative to the transposition table and not a knob GUIs
// expect to tune.
const defaultEvalCacheSizeMB = 4

// NewClient builds a UCI client with the engine's full command and
// option set wired in, ready for Client.Start.
func NewClient() uci.Client {
	client := uci.NewClient()

	startBoard, err := board.NewBoard(board.StartFEN)
	if err != nil {
		panic(err) // board.StartFEN is a compile-time constant, never malformed
	}

	engine := &context.Engine{
		Search: search.NewContext(startBoard, defaultTableSizeMB, defaultEvalCacheSizeMB),
	}
	engine.Client = client

	engine.OptionSchema = option.NewSchema()
	engine.OptionSchema.AddOption("Hash", options.NewHash(engine))
	engine.OptionSchema.AddOption("Threads", options.NewThreads(engine))
	engine.OptionSchema.AddOption("Ponder", options.NewPonder(engine))
	if err := engine.OptionSchema.SetDefaults(); err != nil {
		panic(err)
	}

	client.AddCommand(cmd.NewUci(engine))
	client.AddCommand(cmd.NewUciNewGame(engine))
	client.AddCommand(cmd.NewPosition(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewStop(engine))
	client.AddCommand(cmd.NewPonderHit(engine))
	client.AddCommand(cmd.NewSetOption(engine))
	client.AddCommand(cmd.NewD(engine))
	client.AddCommand(cmd.NewPgn(engine))

	return client
}
