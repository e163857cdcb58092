// Package tuner implements a texel-style tuner for the hand-set
// positional weights exposed by pkg/eval.TunableTerms, fitting them
// against a labeled FEN dataset produced by internal/datagen.
package tuner

import (
	"bufio"
	"errors"
	"math"
	"os"
	"strings"

	"shardchess.dev/x/core/pkg/board"
	"shardchess.dev/x/core/pkg/eval"
	"shardchess.dev/x/core/pkg/piece"
)

// Entry is one labeled training position.
type Entry struct {
	FEN    string
	Result float64 // 1.0 white win, 0.5 draw, 0.0 black win
}

// Dataset is the training set used to fit terms.go's weights.
type Dataset []Entry

// LoadDataset reads a file of "[1.0] fen" lines as written by
// internal/datagen.
func LoadDataset(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var dataset Dataset

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		tag, fenString, found := strings.Cut(line, " ")
		if !found {
			return nil, errors.New("tuner: invalid dataset entry: " + line)
		}

		var result float64
		switch tag {
		case "[1.0]":
			result = 1.0
		case "[0.0]":
			result = 0.0
		case "[0.5]":
			result = 0.5
		default:
			return nil, errors.New("tuner: invalid dataset entry: " + line)
		}

		dataset = append(dataset, Entry{FEN: fenString, Result: result})
	}

	return dataset, scanner.Err()
}

// whiteEval returns the static evaluation of fenString from White's
// perspective, the orientation Sigmoid expects.
func whiteEval(fenString string) eval.Eval {
	b, err := board.New(fenString)
	if err != nil {
		panic("tuner: dataset line holds a malformed fen: " + err.Error())
	}
	e := eval.Evaluate(b)
	if b.SideToMove == piece.Black {
		e = -e
	}
	return e
}

// Sigmoid squashes a centipawn evaluation into a [0, 1] win
// probability at scale k, grounded on the teacher's
// classical/tuner.Sigmoid.
func Sigmoid(k, e float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*e/400.0))
}

// ComputeE is the dataset's mean squared error between the
// Sigmoid-scaled static evaluation and the actual game result, at
// scale k.
func (d Dataset) ComputeE(k float64) float64 {
	var total float64
	for _, entry := range d {
		total += math.Pow(entry.Result-Sigmoid(k, float64(whiteEval(entry.FEN))), 2)
	}
	return total / float64(len(d))
}

// ComputeK coordinate-searches for the scale minimizing ComputeE to
// the given number of decimal digits, grounded on the teacher's
// classical/tuner.Dataset.ComputeK.
func (d Dataset) ComputeK(precision int) float64 {
	start, end, step := 0.0, 10.0, 1.0
	best := d.ComputeE(start)

	for i := 0; i <= precision; i++ {
		current := start - step
		for current < end {
			current += step
			if e := d.ComputeE(current); e <= best {
				best, start = e, current
			}
		}

		end = start + step
		start = start - step
		step /= 10.0
	}

	return start
}
