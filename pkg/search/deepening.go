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

import (
	"fmt"
	"time"

	"github.com/godwin-jg/quadrachess/internal/util"
	"github.com/godwin-jg/quadrachess/pkg/eval"
	"github.com/godwin-jg/quadrachess/pkg/move"
)

// iterativeDeepening is the main search loop, grounded on the
// teacher's pkg/search/deepning.go: it calls the root alpha-beta
// search for depth 1, 2, 3, ... until the depth limit is hit or time
// runs out, letting earlier iterations warm the transposition table
// and move-ordering heuristics for the next one.
// https://www.chessprogramming.org/Iterative_Deepening
func (search *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	var score eval.Eval
	var pv move.Variation

	start := time.Now()

	for search.depth = 1; search.depth <= search.limits.Depth; search.depth++ {
		var childPV move.Variation
		score = search.alphabeta(search.Board, 0, search.depth, -eval.Inf, eval.Inf, &childPV)

		if search.stopped {
			// the just-finished iteration may have been cut off
			// mid-search, so its pv/score could be garbage; keep
			// the previous, complete iteration's result instead
			break
		}

		pv = childPV
		search.lastRootMoves = append(search.lastRootMoves[:0], search.rootMoves...)

		elapsed := time.Since(start)
		fmt.Printf(
			"info depth %d score %s nodes %d nps %.f time %d pv %s\n",
			search.depth, score, search.nodes,
			float64(search.nodes)/util.Max(0.001, elapsed.Seconds()),
			elapsed.Milliseconds(), pv,
		)
	}

	return pv, score
}
