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
)

// pieceValue mirrors piece.Type.Value (spec.md §6.4's scoring table)
// but lives here as Eval-typed centipawns rather than raw points.
var pieceValue = [piece.TypeN]Eval{
	piece.Pawn:   100,
	piece.Knight: 300,
	piece.Bishop: 500,
	piece.Rook:   500,
	piece.Queen:  900,
	piece.King:   0,
}

// aliveKingBonus is the "additional constant per live king" of
// spec.md §4.5, which exists purely so the evaluator prefers keeping
// a color's king on the board over losing it (every active color has
// exactly one, so in practice this only matters relative to an
// eliminated rival's absent king).
const aliveKingBonus Eval = 50

// PieceValue returns t's material value, for callers outside this
// package that need a rough capture gain estimate (e.g. the
// searcher's quiescence delta pruning).
func PieceValue(t piece.Type) Eval {
	return pieceValue[t]
}

func material(pos *board.Position, c piece.Color) Eval {
	var score Eval
	for _, t := range piece.Types {
		n := pos.PieceBB[c][t].Count()
		score += pieceValue[t] * Eval(n)
	}
	if !pos.PieceBB[c][piece.King].Empty() {
		score += aliveKingBonus
	}
	return score
}
