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

// undefendedFraction and defendedFraction are the two hanging-piece
// discount rates of spec.md §4.5: a larger fraction of the piece's
// value is docked when no friendly piece could recapture.
const (
	undefendedFraction = 0.5
	defendedFraction   = 0.15
)

// hangingPenalty returns the (positive) amount to subtract from c's
// score for pieces sitting on enemy-attacked squares.
func hangingPenalty(pos *board.Position, c piece.Color) Eval {
	var penalty Eval
	for _, t := range piece.Types {
		if t == piece.King {
			continue
		}
		bb := pos.PieceBB[c][t]
		for sq, rest := bb.Pop(); sq != square.None; sq, rest = rest.Pop() {
			if !attackedByOthers(pos, c, sq) {
				continue
			}
			fraction := defendedFraction
			if !defendedBySelf(pos, c, sq) {
				fraction = undefendedFraction
			}
			penalty += Eval(float64(pieceValue[t]) * fraction)
		}
	}
	return penalty
}
