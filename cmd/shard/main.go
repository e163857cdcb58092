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
	"fmt"
	"os"

	"shardchess.dev/x/core/internal/build"
	"shardchess.dev/x/core/internal/engine"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]

	switch {
	case len(args) > 0 && args[0] == "perft":
		return runPerft(args[1:])

	case len(args) > 0 && args[0] == "tune":
		return runTune(args[1:])

	case len(args) > 0 && args[0] == "datagen":
		return runDatagen(args[1:])

	case len(args) > 0 && args[0] == "watch":
		return runWatch(args[1:])

	default:
		return runUCI(args)
	}
}

// runUCI starts the plain UCI client: a REPL on stdin/stdout if no
// arguments were given, or a single evaluated command otherwise.
func runUCI(args []string) error {
	client := engine.NewClient()

	fmt.Printf("Shard %s\n", build.String())

	if len(args) == 0 {
		return client.Start()
	}

	// not in a repl: don't run the one command in parallel
	return client.RunWith(args, false)
}
