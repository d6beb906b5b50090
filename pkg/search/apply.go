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
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/move"
)

// childPosition clones pos, plays m on the clone, and restores every
// derived invariant the quadchess state machine would (turn advance,
// en-passant expiry, attack/pin/check recomputation, and the full
// zobrist hash), mirroring pkg/quadchess/ops.go's commit pipeline.
// board.Position has no in-place unmake, so the searcher clones once
// per child rather than the teacher's make/unmake stack; this is the
// same tradeoff board.Perft already makes.
func childPosition(pos *board.Position, m move.Move) *board.Position {
	child := pos.Clone()
	rec := child.Apply(m)
	child.Turn = child.NextActive(rec.Color)
	child.ExpireEnPassants(child.Turn)
	child.RecomputeDerived()
	child.Hash = child.RecomputeHash()
	return child
}

// passPosition clones pos and advances the turn without playing a
// move, used by null-move pruning to test whether the side to move
// is already safe even without acting.
func passPosition(pos *board.Position) *board.Position {
	child := pos.Clone()
	child.Turn = child.NextActive(child.Turn)
	child.ExpireEnPassants(child.Turn)
	child.RecomputeDerived()
	child.Hash = child.RecomputeHash()
	return child
}
