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
	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"
)

// MoveScore is a move's static ordering score, independent of the
// killer/history state the searcher tracks across a single search.
type MoveScore int32

// MvvLvaOffset separates capture scores from the default quiet-move
// score of 0, so within StaticScore every capture sorts ahead of every
// quiet move. The searcher adds its own good/bad capture offsets on
// top (pkg/search/heuristics.go), which put captures SEE judges
// losing below killers and quiet history moves.
const MvvLvaOffset MoveScore = 10000

// MvvLva mirrors the teacher's pkg/search/eval/move.go table: a
// less valuable attacker taking a more valuable victim scores higher,
// "most valuable victim, least valuable attacker".
var MvvLva = [piece.TypeN][piece.TypeN]MoveScore{
	piece.Pawn:   {16, 15, 14, 13, 12, 11},
	piece.Knight: {26, 25, 24, 23, 22, 21},
	piece.Bishop: {36, 35, 34, 33, 32, 31},
	piece.Rook:   {46, 45, 44, 43, 42, 41},
	piece.Queen:  {56, 55, 54, 53, 52, 51},
}

// StaticScore returns m's capture/promotion ordering score on pos, or
// 0 for a quiet move (the searcher layers killer/history bonuses onto
// that baseline itself).
func StaticScore(pos *board.Position, m move.Move) MoveScore {
	switch {
	case m.IsCapture():
		victim := pos.PieceAt(m.Target()).Type()
		attacker := m.FromPiece().Type()
		return MvvLvaOffset + MvvLva[victim][attacker]
	case m.IsPromotion():
		return MvvLvaOffset
	default:
		return 0
	}
}
