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
	"github.com/godwin-jg/quadrachess/pkg/eval"
	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"

	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/search/tt"
)

// nullMoveReduction is the depth reduction applied to the verification
// search null-move pruning runs, following the common R=2 choice.
const nullMoveReduction = 2

// alphabeta is the paranoid multiplayer alpha-beta search described
// in the search package doc: nodes where pos.Turn is search.rootColor
// maximize the fixed-perspective score returned by search.score,
// every other node minimizes it, modeling the rest of the table as a
// single coalition against rootColor. alpha and beta are never
// negated between plys (unlike negamax's recursive sign flip), since
// both bound the same root-relative quantity throughout the tree.
//
// It is grounded on the teacher's pkg/search/negamax.go for its
// transposition table usage, principal variation search, and
// move-ordering structure, restructured into explicit max/min
// branches in place of negamax's single sign-flipping recursion.
func (search *Context) alphabeta(pos *board.Position, plys, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	search.nodes++
	pv.Clear()

	if plys > 0 && search.shouldStop() {
		return 0
	}

	if depth <= 0 {
		return search.quiescence(pos, plys, alpha, beta)
	}

	maximizing := pos.Turn == search.rootColor
	isPVNode := beta-alpha > 1

	if plys == 0 {
		search.rootMoves = search.rootMoves[:0]
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return search.terminalEval(pos, plys)
	}

	if plys == 0 {
		moves = filterRootSafety(pos, moves)
	}

	originalAlpha, originalBeta := alpha, beta

	ttMove := move.Null
	if entry, hit := search.tt.Probe(pos.Hash); hit {
		ttMove = entry.Move
		if !isPVNode && int(entry.Depth) >= depth {
			search.ttHits++
			value := entry.Value.Eval(plys)

			switch entry.Type {
			case tt.ExactEntry:
				return value
			case tt.LowerBound:
				alpha = util.Max(alpha, value)
			case tt.UpperBound:
				beta = util.Min(beta, value)
			}

			if alpha >= beta {
				return value
			}
		}
	}

	// null-move pruning: let the side to move pass, and see if the
	// position is still safe/lost for them even without playing a
	// move. Skipped in check (a "pass" would be illegal), near the
	// leaves, and when the mover has only king and pawns left, where
	// zugzwang makes passing artificially attractive.
	if !isPVNode && plys > 0 && depth >= 3 &&
		!pos.CheckStatus[pos.Turn] && hasNonPawnMaterial(pos, pos.Turn) {

		null := passPosition(pos)

		var childPV move.Variation
		if maximizing {
			nullEval := search.alphabeta(null, plys+1, depth-1-nullMoveReduction, beta-1, beta, &childPV)
			if nullEval >= beta {
				return nullEval
			}
		} else {
			nullEval := search.alphabeta(null, plys+1, depth-1-nullMoveReduction, alpha, alpha+1, &childPV)
			if nullEval <= alpha {
				return nullEval
			}
		}
	}

	list := search.orderedMoves(pos, moves, ttMove, plys)

	bestMove := move.Null
	var bestEval eval.Eval
	if maximizing {
		bestEval = -eval.Inf
	} else {
		bestEval = eval.Inf
	}

	inCheck := pos.CheckStatus[pos.Turn]

	for i := 0; i < list.Len(); i++ {
		scored := list.Pick(i)
		m := scored.Move

		// SEE pruning (spec.md §4.6.2 step 6): a capture that loses
		// material even after the full exchange is skipped outright
		// unless the mover is in check, where every legal move must
		// stay on the table.
		if i > 0 && m.IsCapture() && !inCheck && !SEE(pos, m, 0) {
			continue
		}

		child := childPosition(pos, m)

		// check extension (spec.md §4.6.2): a move that gives check
		// gets searched one ply deeper instead of shallower, capped at
		// rootDepth+2 total extension along this path so a long check
		// sequence can't blow up the search. depth+plys-search.depth
		// recovers how much extension this path has already spent,
		// since every unextended ply decrements depth by exactly as
		// much as plys grows.
		nextDepth := depth - 1
		if child.CheckStatus[child.Turn] && depth+plys-search.depth < 2 {
			nextDepth = depth
		}

		var childPV move.Variation
		var childEval eval.Eval

		switch {
		case i == 0:
			// first move (the tt/pv move if one exists): always
			// searched with the full window
			childEval = search.alphabeta(child, plys+1, nextDepth, alpha, beta, &childPV)

		case maximizing:
			childEval = search.alphabeta(child, plys+1, nextDepth, alpha, alpha+1, &childPV)
			if childEval > alpha && childEval < beta {
				childEval = search.alphabeta(child, plys+1, nextDepth, alpha, beta, &childPV)
			}

		default:
			childEval = search.alphabeta(child, plys+1, nextDepth, beta-1, beta, &childPV)
			if childEval > alpha && childEval < beta {
				childEval = search.alphabeta(child, plys+1, nextDepth, alpha, beta, &childPV)
			}
		}

		if plys == 0 {
			search.rootMoves = append(search.rootMoves, RootMove{Move: m, Score: childEval})
		}

		if maximizing {
			if childEval > bestEval {
				bestEval = childEval
				bestMove = m
				if childEval > alpha {
					alpha = childEval
					pv.Update(m, childPV)
				}
			}
		} else {
			if childEval < bestEval {
				bestEval = childEval
				bestMove = m
				if childEval < beta {
					beta = childEval
					pv.Update(m, childPV)
				}
			}
		}

		if alpha >= beta {
			bonus := depthBonus(depth)
			search.storeKiller(plys, m)
			search.updateHistory(pos.Turn, m, bonus)
			// moves tried before the one that cut off get punished so
			// the history table keeps discriminating instead of
			// saturating at the bonus ceiling
			for j := 0; j < i; j++ {
				search.updateHistory(pos.Turn, list.Pick(j).Move, -bonus)
			}
			break
		}
	}

	if !search.stopped {
		var entryType tt.EntryType
		switch {
		case bestEval <= originalAlpha:
			entryType = tt.UpperBound
		case bestEval >= originalBeta:
			entryType = tt.LowerBound
		default:
			entryType = tt.ExactEntry
		}

		search.tt.Store(tt.Entry{
			Hash:  pos.Hash,
			Value: tt.EvalFrom(bestEval, plys),
			Move:  bestMove,
			Depth: uint8(depth),
			Type:  entryType,
		})
	}

	return bestEval
}

// terminalEval scores a node where pos.Turn has no legal moves. In
// this variant both checkmate and stalemate eliminate the mover
// (spec.md §4.4), so both are scored the same way here: a severe,
// mate-distance-ordered penalty if the eliminated color is rootColor
// or its teammate, and the mirrored bonus otherwise. The search does
// not simulate the remaining N-1 player game that would actually
// follow an elimination (too expensive to unfold at every such node);
// it treats the elimination itself as decisive enough to stop
// searching that branch.
func (search *Context) terminalEval(pos *board.Position, plys int) eval.Eval {
	mover := pos.Turn
	onRootSide := mover == search.rootColor
	if !onRootSide && pos.TeamMode {
		onRootSide = pos.TeamAssignments[mover] == pos.TeamAssignments[search.rootColor]
	}
	if onRootSide {
		return eval.MatedIn(plys)
	}
	return -eval.MatedIn(plys)
}

// hasNonPawnMaterial reports whether c has any piece other than pawns
// and its king, used to withhold null-move pruning in likely zugzwang
// positions (bare king-and-pawn endgames).
func hasNonPawnMaterial(pos *board.Position, c piece.Color) bool {
	for _, t := range [...]piece.Type{piece.Knight, piece.Bishop, piece.Rook, piece.Queen} {
		if !pos.PieceBB[c][t].Empty() {
			return true
		}
	}
	return false
}
