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

// Per-phase weights for the centrality/advancement terms of
// spec.md §4.5. These aren't tuned against game data (unlike the
// teacher's PeSTO tables, themselves machine-tuned); the centrality
// formula itself comes from the spec, so only its scaling per phase
// and piece type is a free choice here, made to match the spec's
// qualitative description of each piece's preference.
var minorCentralityWeight = [3]float64{30, 24, 16}
var pawnAdvanceWeight = [3]float64{6, 14, 26}
var queenCentralityWeight = [3]float64{6, 14, 26}

const (
	kingEdgeWeight       = 18.0 // opening/middlegame: king favors edges
	kingCentralityWeight = 24.0 // endgame: king favors center
)

func pieceSquares(pos *board.Position, c piece.Color, phase Phase) Eval {
	var score Eval
	for _, t := range piece.Types {
		bb := pos.PieceBB[c][t]
		for sq, rest := bb.Pop(); sq != square.None; sq, rest = rest.Pop() {
			score += pstBonus(t, c, sq, phase)
		}
	}
	return score
}

func pstBonus(t piece.Type, c piece.Color, sq square.Square, phase Phase) Eval {
	switch t {
	case piece.Knight, piece.Bishop:
		return Eval(centrality(sq) * minorCentralityWeight[phase])
	case piece.Pawn:
		return Eval(advancement(c, sq) * pawnAdvanceWeight[phase])
	case piece.Queen:
		return Eval(centrality(sq) * queenCentralityWeight[phase])
	case piece.King:
		if phase == Endgame {
			return Eval(centrality(sq) * kingCentralityWeight)
		}
		return Eval((1 - centrality(sq)) * kingEdgeWeight)
	default:
		// Rook carries no centrality/edge preference in spec.md §4.5.
		return 0
	}
}

// advancement returns how far sq has progressed from c's own back
// rank toward the far edge (c's opponents' territory), normalized to
// [0, 1]; used by the pawn advancement term.
func advancement(c piece.Color, sq square.Square) float64 {
	const last = float64(square.Ranks - 1) // == Files-1, board is square
	switch c {
	case piece.Red:
		return (last - float64(sq.Row())) / last
	case piece.Yellow:
		return float64(sq.Row()) / last
	case piece.Blue:
		return float64(sq.Col()) / last
	case piece.Green:
		return (last - float64(sq.Col())) / last
	default:
		return 0
	}
}
