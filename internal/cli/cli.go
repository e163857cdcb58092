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

// Package cli holds small terminal-presentation helpers shared by
// cmd/shard's interactive subcommands: TTY detection, so piped output
// degrades to plain UCI text, and colorized pass/fail rendering for
// the perft subcommand.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/colorstring"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal. Colorized
// output and the watch TUI should only be attempted when this is true;
// a GUI piping UCI over stdout/stdin expects plain, uncolored text.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Colorize wraps colorstring.Color, applying [color]...[reset] style
// tags only when out is a terminal; otherwise the tags are stripped and
// the plain text is returned so redirected/piped output stays clean.
func Colorize(out io.Writer, s string) string {
	if !IsTerminal(out) {
		return stripTags(s)
	}
	return colorstring.Color(s)
}

// Pass renders a perft comparison as a green "ok" line when want
// and got agree, or a red mismatch line otherwise.
func Pass(out io.Writer, label string, want, got int64) string {
	if want == got {
		return Colorize(out, fmt.Sprintf("[green]ok[reset]   %s: %d", label, got))
	}
	return Colorize(out, fmt.Sprintf("[red]FAIL[reset] %s: want %d, got %d", label, want, got))
}

// stripTags removes colorstring's [color] tags so a non-terminal still
// gets the underlying text, just without escape codes.
func stripTags(s string) string {
	var out []byte
	inTag := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '[' && !inTag:
			inTag = true
		case s[i] == ']' && inTag:
			inTag = false
		case !inTag:
			out = append(out, s[i])
		}
	}
	return string(out)
}
