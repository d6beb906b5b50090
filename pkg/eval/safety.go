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
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

const (
	pawnShieldBonus    Eval = 8
	attackerPenalty    Eval = 14
	inCheckPenalty     Eval = 60
)

// kingSafety implements spec.md §4.5's king-safety term: in opening
// and middlegame, reward friendly pawns in a 5x5 ring around the
// king and penalize enemy-attacked squares in the 3x3 ring; in
// endgame only the in-check penalty still applies. The 5x5 radius is
// used consistently rather than the spec's alternate 3x3 reading,
// per the Open Question resolution recorded in DESIGN.md.
func kingSafety(pos *board.Position, c piece.Color, phase Phase) Eval {
	kingSq := pos.KingSquare(c)
	if kingSq == square.None {
		return 0
	}

	var score Eval
	if pos.CheckStatus[c] {
		score -= inCheckPenalty
	}
	if phase == Endgame {
		return score
	}

	kr, kc := kingSq.Row(), kingSq.Col()
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c2 := kr+dr, kc+dc
			if !square.PlayableRC(r, c2) {
				continue
			}
			sq := square.New(r, c2)

			if iabs(dr) <= 1 && iabs(dc) <= 1 {
				if attackedByOthers(pos, c, sq) {
					score -= attackerPenalty
				}
			}

			p := pos.PieceAt(sq)
			if p.IsColor(c) && p.Type() == piece.Pawn {
				score += pawnShieldBonus
			}
		}
	}
	return score
}
