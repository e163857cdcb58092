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

	"shardchess.dev/x/core/internal/tuner"
)

// runTune runs "shard tune -dataset <path> [-epochs N] [-rate R]",
// fitting pkg/eval's positional terms against a labeled FEN dataset.
func runTune(args []string) error {
	fs := flag.NewFlagSet("tune", flag.ExitOnError)
	dataset := fs.String("dataset", "data.fen", "labeled FEN dataset produced by \"shard datagen\"")
	plot := fs.String("plot", "error-plot.html", "mean-squared-error curve output path")
	epochs := fs.Int("epochs", 50, "number of gradient-descent epochs to run")
	rate := fs.Float64("rate", 0.01, "learning rate")
	step := fs.Float64("step", 1.0, "finite-difference step used for the numeric gradient")

	if err := fs.Parse(args); err != nil {
		return err
	}

	return tuner.Run(tuner.Config{
		Dataset:      *dataset,
		PlotFile:     *plot,
		Epochs:       *epochs,
		LearningRate: *rate,
		Step:         *step,
	})
}
