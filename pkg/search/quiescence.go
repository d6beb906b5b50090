// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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
	"github.com/godwin-jg/quadrachess/internal/util"
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/eval"
	"github.com/godwin-jg/quadrachess/pkg/move"
)

// quiescenceDeltaMargin is the allowance added on top of the
// standing-pat score before a capture is pruned outright as too weak
// to close the gap to alpha/beta, guarding against evaluation error
// near the horizon.
const quiescenceDeltaMargin eval.Eval = 150

// maxQuiescenceDepth caps how many plys quiescence will recurse past
// the main search's horizon (spec.md §4.6.5), independent of plys
// (which counts from the search root). Capture sequences are finite
// on their own, so this mainly guards against pathological positions
// with an unusually long forced-capture chain eating the time budget.
const maxQuiescenceDepth = 16

// quiescence extends search past depth 0 along capture/promotion
// lines only, to avoid the horizon effect (a quiet-looking leaf whose
// very next move is a large capture). Grounded on the teacher's
// pkg/search/quiescence.go, restructured into the same explicit
// max/min split as alphabeta since the non-zero-sum evaluator rules
// out negamax's sign-flip recursion here too.
// https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(pos *board.Position, plys int, alpha, beta eval.Eval) eval.Eval {
	return search.quiescenceAt(pos, plys, 0, alpha, beta)
}

// quiescenceAt is quiescence's recursive body, threading qDepth (plys
// spent inside quiescence itself, reset to 0 at the depth-0 call from
// alphabeta) separately from plys so maxQuiescenceDepth bounds the
// capture-chase independent of how deep the main search already is.
func (search *Context) quiescenceAt(pos *board.Position, plys, qDepth int, alpha, beta eval.Eval) eval.Eval {
	search.nodes++

	if search.shouldStop() {
		return 0
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return search.terminalEval(pos, plys)
	}

	standPat := search.score(pos)
	if qDepth >= maxQuiescenceDepth {
		return standPat
	}

	maximizing := pos.Turn == search.rootColor
	best := standPat

	if maximizing {
		if best >= beta {
			return best
		}
		alpha = util.Max(alpha, best)
	} else {
		if best <= alpha {
			return best
		}
		beta = util.Min(beta, best)
	}

	list := search.orderedMoves(pos, moves, move.Null, plys)

	for i := 0; i < list.Len(); i++ {
		m := list.Pick(i).Move
		if !m.IsCapture() && !m.IsPromotion() {
			continue
		}

		if m.IsCapture() {
			gain := eval.PieceValue(pos.PieceAt(m.Target()).Type())
			if maximizing && standPat+gain+quiescenceDeltaMargin < alpha {
				continue // delta pruning: can't plausibly close the gap
			}
			if !maximizing && standPat-gain-quiescenceDeltaMargin > beta {
				continue
			}
			if !SEE(pos, m, 0) {
				continue // losing capture, unlikely to help the mover
			}
		}

		child := childPosition(pos, m)
		childEval := search.quiescenceAt(child, plys+1, qDepth+1, alpha, beta)

		if maximizing {
			if childEval > best {
				best = childEval
			}
			if childEval > alpha {
				alpha = childEval
			}
		} else {
			if childEval < best {
				best = childEval
			}
			if childEval < beta {
				beta = childEval
			}
		}

		if alpha >= beta {
			break
		}
	}

	return best
}
