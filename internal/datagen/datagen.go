// Package datagen turns a directory of PGN game archives into a
// labeled FEN dataset for internal/tuner: one "result fen" line per
// quiet position reached while replaying each game, result being the
// game's outcome from White's perspective ("[1.0]"/"[0.5]"/"[0.0]"). Quiet
// positions are selected the way a texel tuner needs them to be: the
// side to move is not in check, and a shallow, cheap search from the
// position doesn't want to immediately capture or promote.
package datagen

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/notnil/chess"
	"github.com/schollz/progressbar/v3"

	"shardchess.dev/x/core/pkg/board"
	"shardchess.dev/x/core/pkg/move"
	"shardchess.dev/x/core/pkg/piece"
	"shardchess.dev/x/core/pkg/search"
	"shardchess.dev/x/core/pkg/square"
)

// Config holds the tunable knobs of a single datagen run.
type Config struct {
	PGNDir string // directory walked (recursively) for *.pgn files
	Output string // labeled-FEN output file, appended to if it exists

	Nodes int // per-position quiet-search node budget
	Depth int // per-position quiet-search depth budget
}

// Run walks cfg.PGNDir for PGN archives, replays every game in them on
// the engine's own board, and appends one labeled FEN line per quiet
// position found to cfg.Output.
func Run(cfg Config) error {
	var files []string
	err := filepath.WalkDir(cfg.PGNDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".pgn") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	out, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	writer := bufio.NewWriter(out)
	defer writer.Flush()

	bar := progressbar.Default(int64(len(files)), "scanning pgn archives")

	startBoard, err := board.NewBoard(board.StartFEN)
	if err != nil {
		panic(err) // board.StartFEN is a compile-time constant, never malformed
	}
	engine := search.NewContext(startBoard, 64, 8)

	written := 0
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return err
		}

		scanner := chess.NewScanner(f)
		for scanner.Scan() {
			written += labelGame(engine, scanner.Next(), cfg, writer)
		}
		f.Close()

		_ = bar.Add(1)
	}

	fmt.Fprintf(os.Stderr, "datagen: wrote %d labeled positions from %d files\n", written, len(files))
	return nil
}

// labelGame replays one game's moves and writes a labeled line for
// each quiet position it passes through, returning how many it wrote.
func labelGame(engine *search.Context, game *chess.Game, cfg Config, w *bufio.Writer) int {
	var result string
	switch game.GetTagPair("Result").Value {
	case "1-0":
		result = "[1.0]"
	case "0-1":
		result = "[0.0]"
	case "1/2-1/2":
		result = "[0.5]"
	default:
		return 0
	}

	b, err := board.NewBoard(board.StartFEN)
	if err != nil {
		panic(err) // board.StartFEN is a compile-time constant, never malformed
	}
	moves := game.Moves()

	written := 0
	for i, gameMove := range moves {
		if i == len(moves)-1 {
			// the final move's resulting position is usually the
			// mating/resigning one, not a useful training label
			break
		}

		b.MakeMove(convertMove(b, gameMove))

		if b.IsInCheck(b.SideToMove) {
			continue
		}

		engine.Board = b
		pv, _, err := engine.Search(search.Limits{Nodes: cfg.Nodes, Depth: cfg.Depth})
		if err != nil {
			continue
		}

		if best := pv.Move(0); best == move.Null || best.IsCapture() || best.IsPromotion() {
			// the position wants to immediately trade or promote;
			// its static evaluation from this snapshot isn't stable
			continue
		}

		fmt.Fprintf(w, "%s %s\n", result, b.FEN())
		written++
	}

	return written
}

// convertMove translates a notnil/chess move, whose squares are
// numbered a1=0 increasing along ranks, into this engine's move.Move.
func convertMove(b *board.Board, gm *chess.Move) move.Move {
	source := square.Square(gm.S1())
	source = square.New(square.File(source%8), 7-square.Rank(source/8))

	target := square.Square(gm.S2())
	target = square.New(square.File(target%8), 7-square.Rank(target/8))

	m := b.NewMove(source, target)

	switch gm.Promo() {
	case chess.Knight:
		m = m.SetPromotion(piece.New(piece.Knight, b.SideToMove))
	case chess.Bishop:
		m = m.SetPromotion(piece.New(piece.Bishop, b.SideToMove))
	case chess.Rook:
		m = m.SetPromotion(piece.New(piece.Rook, b.SideToMove))
	case chess.Queen:
		m = m.SetPromotion(piece.New(piece.Queen, b.SideToMove))
	}

	return m
}
