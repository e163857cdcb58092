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

package cmd

import (
	"errors"

	"shardchess.dev/x/core/internal/engine/context"
	"shardchess.dev/x/core/pkg/uci/cmd"
)

// Custom command pgn
//
// Exports the game set up by the most recent "position" command as
// PGN text, useful for replaying a lost test game or a GUI session
// after the fact; "position" rebuilds this record from scratch every
// time it is sent, so it always reflects the moves list of the last
// "position" call, not just the moves played since engine startup.
func NewPgn(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "pgn",
		Run: func(interaction cmd.Interaction) error {
			if engine.Game == nil {
				return errors.New("pgn: no position has been set up yet")
			}

			interaction.Print(engine.Game.Export())
			return nil
		},
	}
}
