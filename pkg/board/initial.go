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

// backRank is the standard R-N-B-Q-K-B-N-R piece order used by every
// color's 8-wide home rank, indices 0..7 mapping to the low-to-high
// coordinate along that color's back rank (row for R/Y, col for B/G).
// The king sits at index 4 (the rank's 8th cell, coordinate 7), which
// matches the castling geometry of spec.md §6.3 for all four colors.
var backRank = [8]piece.Type{
	piece.Rook, piece.Knight, piece.Bishop, piece.Queen,
	piece.King, piece.Bishop, piece.Knight, piece.Rook,
}

// Initial builds the starting position: each color's 8x2 home area
// (back rank + pawn rank) along its edge of the cross board, Red to
// move first (spec.md §3.3 turn order R->B->Y->G->R).
func Initial() *Position {
	pos := NewEmpty()

	place := func(c piece.Color, backRow, pawnRow int, axisIsRow bool) {
		for i, t := range backRank {
			coord := 3 + i
			var back, pawn square.Square
			if axisIsRow {
				back = square.New(backRow, coord)
				pawn = square.New(pawnRow, coord)
			} else {
				back = square.New(coord, backRow)
				pawn = square.New(coord, pawnRow)
			}
			pos.place(back, piece.New(c, t))
			pos.place(pawn, piece.New(c, piece.Pawn))
		}
	}

	place(piece.Red, 13, 12, true)
	place(piece.Yellow, 0, 1, true)
	place(piece.Blue, 0, 1, false)
	place(piece.Green, 13, 12, false)

	pos.Turn = piece.Red
	pos.RecomputeDerived()
	pos.Hash = pos.RecomputeHash()
	return pos
}
