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

package search

import "shardchess.dev/x/core/internal/util"

// lateMoveReduction returns how many plys to shave off a child search
// for the index-th move in the ordered move list. Quiet, non-check
// moves past the first three are reduced once depth is at least 3;
// the reduction grows with how late the move was tried, capped at 2
// extra plys.
func lateMoveReduction(index int) int {
	return 1 + util.Min(index/6, 2)
}
