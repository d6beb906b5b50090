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
	"github.com/godwin-jg/quadrachess/internal/util"
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/eval"
	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"
)

// killer/history move-score bonuses, and the good/bad capture tier
// offsets layered on top of eval.StaticScore's MVV-LVA value. Per
// spec.md §4.6.4 the six ordering tiers from best to worst are: the TT
// move, captures/promotions SEE judges non-losing ("good"), killers,
// quiet moves by history, captures SEE judges losing ("bad"), then
// everything else. goodCaptureOffset clears killerBonus1 by a wide
// margin and badCaptureOffset is negative enough to sink a losing
// capture below the history table's practical range, so a single
// int32 score totally orders all six tiers.
const (
	goodCaptureOffset int32 = 20000
	killerBonus1      int32 = 9000
	killerBonus2      int32 = 8500
	badCaptureOffset  int32 = -20000
)

// storeKiller remembers a quiet move that caused a beta cutoff at
// plys as one of that ply's two killer moves, grounded on the
// teacher's pkg/search/heuristics.go.
func (search *Context) storeKiller(plys int, killer move.Move) {
	if killer.IsCapture() {
		return
	}
	if killer != search.killers[plys][0] {
		search.killers[plys][1] = search.killers[plys][0]
		search.killers[plys][0] = killer
	}
}

// updateHistory nudges m's history score for mover by bonus (which
// may be negative, to punish quiet moves that were tried and failed
// to cause a cutoff), using the same decaying update as the teacher
// so the table self-normalizes instead of growing unboundedly.
func (search *Context) updateHistory(mover piece.Color, m move.Move, bonus int32) {
	if m.IsCapture() {
		return
	}
	entry := &search.history[mover][m.Source()][m.Target()]
	*entry += bonus - *entry*util.Abs(bonus)/32768
}

// depthBonus is the history bonus/malus magnitude for a cutoff or
// miss found at the given depth: deeper cutoffs say more about a
// move's quality, so they move the history score further.
func depthBonus(depth int) int32 {
	return int32(util.Min(2000, depth*155))
}

// scoreMove gives m its move-ordering priority at plys: the
// transposition table's remembered best move first, then captures
// SEE judges good, then this ply's killer moves, then the mover's
// accumulated history score, then captures SEE judges bad.
func (search *Context) scoreMove(pos *board.Position, m, ttMove move.Move, plys int) int32 {
	switch {
	case ttMove != move.Null && m == ttMove:
		return 1 << 30
	case m.IsCapture():
		mvvLva := int32(eval.StaticScore(pos, m))
		if SEE(pos, m, 0) {
			return goodCaptureOffset + mvvLva
		}
		return badCaptureOffset + mvvLva
	case m.IsPromotion():
		return goodCaptureOffset + int32(eval.StaticScore(pos, m))
	case m == search.killers[plys][0]:
		return killerBonus1
	case m == search.killers[plys][1]:
		return killerBonus2
	default:
		return search.history[pos.Turn][m.Source()][m.Target()]
	}
}

// orderedMoves scores every legal move in moves for move ordering at
// plys and returns them ready for best-first Pick iteration.
func (search *Context) orderedMoves(pos *board.Position, moves []move.Move, ttMove move.Move, plys int) *move.List {
	list := move.NewList(len(moves))
	for _, m := range moves {
		list.Add(m, search.scoreMove(pos, m, ttMove, plys))
	}
	return list
}
