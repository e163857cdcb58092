// Package pgnlog exports games the engine has played through its own
// MakeMove/UnmakeMove as PGN, for post-mortem debugging after a GUI
// disconnect or a lost test game. It is distinct from internal/datagen,
// which reads third-party PGN archives with notnil/chess; pgnlog only
// ever writes games this engine itself played.
package pgnlog

import (
	"os"
	"time"

	"gopkg.in/freeeve/pgn.v1"

	"shardchess.dev/x/core/pkg/move"
)

// Game accumulates one played game's moves and header tags as the
// engine plays it, ready to be rendered to PGN with Export.
type Game struct {
	Event, White, Black string
	Start               time.Time

	moves  []move.Move
	result string
}

// NewGame starts recording a new game between white and black.
func NewGame(event, white, black string) *Game {
	return &Game{
		Event: event,
		White: white,
		Black: black,
		Start: time.Now(),
	}
}

// Record appends m to the game's move list.
func (g *Game) Record(m move.Move) {
	g.moves = append(g.moves, m)
}

// Finish sets the game's result tag ("1-0", "0-1", "1/2-1/2", or "*"
// if undecided) once play stops.
func (g *Game) Finish(result string) {
	g.result = result
}

// Export renders g as PGN text. Move text is coordinate notation
// (e.g. "e2e4") rather than SAN, since the board doesn't keep enough
// disambiguation context to print algebraic notation cheaply; good
// enough to replay through the engine's own "position ... moves ..."
// command for debugging, if not for publishing.
func (g *Game) Export() string {
	result := g.result
	if result == "" {
		result = "*"
	}

	game := pgn.Game{
		Tags: map[string]string{
			"Event":  g.Event,
			"White":  g.White,
			"Black":  g.Black,
			"Date":   g.Start.Format("2006.01.02"),
			"Result": result,
		},
	}

	for _, m := range g.moves {
		game.Moves = append(game.Moves, m.String())
	}

	return game.String()
}

// WriteFile appends g's PGN export, followed by a blank line, to the
// file at path, creating it if necessary.
func WriteFile(path string, g *Game) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(g.Export() + "\n\n")
	return err
}
