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
	"testing"

	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// putPiece places p directly into pos's bitboards/mailbox without
// going through board.Position's unexported place, since SEE's tests
// only need a hand-built material layout, not a legal reachable game.
func putPiece(pos *board.Position, sq square.Square, p piece.Piece) {
	pos.PieceBB[p.Color()][p.Type()].Set(sq)
	pos.ColorBB[p.Color()].Set(sq)
	pos.Occupied.Set(sq)
	pos.Mailbox[sq] = p
}

func TestSEERejectsCaptureBelowThresholdOutright(t *testing.T) {
	pos := board.NewEmpty()
	target := square.New(6, 7)
	putPiece(pos, target, piece.New(piece.Blue, piece.Pawn))
	pos.RecomputeDerived()

	m := move.New(square.New(6, 6), target, piece.New(piece.Red, piece.Queen), piece.New(piece.Blue, piece.Pawn))

	if SEE(pos, m, 5000) {
		t.Error("a pawn capture can never clear a 5000 threshold")
	}
}

func TestSEEAcceptsClearlyWinningCapture(t *testing.T) {
	pos := board.NewEmpty()
	target := square.New(6, 7)
	putPiece(pos, target, piece.New(piece.Blue, piece.Queen))
	pos.RecomputeDerived()

	m := move.New(square.New(6, 6), target, piece.New(piece.Red, piece.Pawn), piece.New(piece.Blue, piece.Queen))

	if !SEE(pos, m, 0) {
		t.Error("a pawn capturing an undefended queen must clear threshold 0")
	}
}

func TestSEEAcceptsCostlyAttackerCaptureWithNoRecapture(t *testing.T) {
	pos := board.NewEmpty()
	target := square.New(6, 7)
	putPiece(pos, target, piece.New(piece.Blue, piece.Pawn))
	pos.RecomputeDerived()

	// a rook taking a pawn that nothing can recapture simply wins the
	// pawn: the rook is never lost, so the exchange nets +pawn.
	m := move.New(square.New(6, 6), target, piece.New(piece.Red, piece.Rook), piece.New(piece.Blue, piece.Pawn))

	if !SEE(pos, m, 0) {
		t.Error("a rook taking an undefended pawn must clear threshold 0")
	}
}
