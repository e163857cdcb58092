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

package eval

import (
	"fmt"

	"shardchess.dev/x/core/pkg/piece"
)

// TunableTerm names and exposes a pointer to one of the hand-set
// positional weights in terms.go, so internal/tuner can read and
// perturb it without package eval knowing tuning exists.
type TunableTerm struct {
	Name string
	Term *Score
}

// TunableTerms enumerates every positional weight in terms.go that is
// a plausible texel-tuning target. Piece values and the pesto
// piece-square tables are deliberately left out: they're the
// well-established part of the evaluation, and re-deriving them needs
// a much larger training set than the positional terms do.
func TunableTerms() []TunableTerm {
	terms := []TunableTerm{
		{"rookFullOpenFile", &rookFullOpenFile},
		{"rookSemiOpenFile", &rookSemiOpenFile},
		{"doubledPawnPenalty", &doubledPawnPenalty},
	}

	for pt := piece.Knight; pt <= piece.Queen; pt++ {
		terms = append(terms, TunableTerm{
			Name: fmt.Sprintf("mobilityWeight[%s]", pt),
			Term: &mobilityWeight[pt],
		})
	}

	for rank := range passedPawnBonus {
		terms = append(terms, TunableTerm{
			Name: fmt.Sprintf("passedPawnBonus[%d]", rank),
			Term: &passedPawnBonus[rank],
		})
	}

	return terms
}
