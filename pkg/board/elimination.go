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

package board

import (
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// Eliminate removes c's pieces from every live generation/attack
// structure while retaining a snapshot in EliminatedPieceBB for
// display (spec.md §3.4). It does not touch Turn, Scores, or
// EliminatedPlayers bookkeeping; that belongs to the quadchess state
// machine, which calls this once per elimination decision.
func (pos *Position) Eliminate(c piece.Color) {
	if pos.Eliminated[c] {
		return
	}
	pos.Eliminated[c] = true
	for _, t := range piece.Types {
		pos.EliminatedPieceBB[c][t] = pos.PieceBB[c][t]
		for sq, rest := pos.PieceBB[c][t].Pop(); sq != square.None; sq, rest = rest.Pop() {
			pos.remove(sq)
		}
	}
}

// ClearEnPassantsOf removes every live en-passant target created by
// c, used when c is eliminated (spec.md §3.4: "enPassantTargets
// contains no entries whose creator is eliminated").
func (pos *Position) ClearEnPassantsOf(c piece.Color) {
	kept := pos.EnPassant[:0]
	for _, ep := range pos.EnPassant {
		if ep.Creator != c {
			kept = append(kept, ep)
		}
	}
	pos.EnPassant = kept
}
