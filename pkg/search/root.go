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
	"math/rand"
	"sort"

	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/eval"
	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"
)

// filterRootSafety implements spec.md §4.6.2 step 5: a root move that
// walks its own piece onto a square some other active color attacks
// and none of the mover's own pieces defend is discarded before the
// search even looks at it, the same pruning pkg/eval's hanging-piece
// term scores after the fact but applied here to cut the move outright.
// If every root move hangs the piece this way (e.g. the mover is down
// to a lone king with no safe square), none are discarded, since a
// search with zero candidate moves can't report anything useful.
func filterRootSafety(pos *board.Position, moves []move.Move) []move.Move {
	safe := make([]move.Move, 0, len(moves))
	for _, m := range moves {
		if !rootMoveHangs(pos, m) {
			safe = append(safe, m)
		}
	}
	if len(safe) == 0 {
		return moves
	}
	return safe
}

// rootMoveHangs reports whether playing m leaves its moving piece on a
// square attacked by some other active color and undefended by any of
// the mover's own pieces. Castling and king moves are exempt: the king
// square's own safety is already enforced by move generation's check
// filtering, and re-testing it here would reject every king move out
// of check as "hanging".
func rootMoveHangs(pos *board.Position, m move.Move) bool {
	if m.FromPiece().Type() == piece.King {
		return false
	}

	mover := m.FromPiece().Color()
	child := childPosition(pos, m)
	target := m.Target()

	attacked := false
	for _, o := range child.ActiveColors() {
		if o == mover {
			continue
		}
		if child.AttackMaps[o].IsSet(target) {
			attacked = true
			break
		}
	}
	if !attacked {
		return false
	}
	return !child.AttackMaps[mover].IsSet(target)
}

// RootMove pairs one root-position legal move with the score the most
// recently completed iterative-deepening pass assigned it, both from
// search.rootColor's point of view.
type RootMove struct {
	Move  move.Move
	Score eval.Eval
}

// RootMoves returns every root move the last fully completed search
// iteration scored, in move-ordered (not score-sorted) order. It is
// nil until Search has run at least one iteration to completion.
func (search *Context) RootMoves() []RootMove {
	return search.lastRootMoves
}

const (
	// gapThreshold is how close the top two root moves' scores must
	// be, in eval.Eval's centipawn-like units, to count as "near-
	// equal" for the weighted top-K choice below.
	gapThreshold = eval.Eval(15)

	// topK is how many of the best near-equal root moves are
	// eligible for the weighted random choice.
	topK = 3

	// underdogChance is the probability of deliberately playing the
	// second-best move even when the best move has a clear lead,
	// so a clear favourite is still not played with total certainty.
	underdogChance = 0.05
)

// SelectMove implements the root-move randomization local/single-
// player play wants: always taking the single best-scored move makes
// the bot trivially predictable. If the top two scores differ by less
// than gapThreshold, SelectMove chooses probabilistically among the
// best (up to) topK moves, weighted by each one's score above the
// group's worst. Otherwise it plays the best move, except with
// probability underdogChance it plays the second-best instead. moves
// need not already be sorted. An empty slice returns move.Null; a
// nil rng uses the package-level default source.
func SelectMove(moves []RootMove, rng *rand.Rand) move.Move {
	if len(moves) == 0 {
		return move.Null
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	sorted := append([]RootMove(nil), moves...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	if len(sorted) == 1 {
		return sorted[0].Move
	}

	best, second := sorted[0], sorted[1]
	if best.Score-second.Score >= gapThreshold {
		if rng.Float64() < underdogChance {
			return second.Move
		}
		return best.Move
	}

	k := topK
	if k > len(sorted) {
		k = len(sorted)
	}
	top := sorted[:k]
	floor := top[k-1].Score

	weights := make([]float64, k)
	var total float64
	for i, rm := range top {
		w := float64(rm.Score-floor) + 1 // +1 keeps the trailing move's weight nonzero
		weights[i] = w
		total += w
	}

	pick := rng.Float64() * total
	for i, w := range weights {
		if pick < w {
			return top[i].Move
		}
		pick -= w
	}
	return top[0].Move
}
