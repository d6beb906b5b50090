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

package quadchess_test

import (
	"testing"

	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/quadchess"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

func newGame() *quadchess.Game {
	return quadchess.Initial(false, [piece.ColorN]int{}, 0)
}

func TestInitialGameStartsActiveWithRedToMove(t *testing.T) {
	g := newGame()
	if g.Status() != quadchess.StatusActive {
		t.Errorf("Status() = %v, want StatusActive", g.Status())
	}
	if g.Position().Turn != piece.Red {
		t.Errorf("Turn = %v, want Red", g.Position().Turn)
	}
}

func TestApplyALegalMoveAdvancesTurnAndHistory(t *testing.T) {
	g := newGame()
	from, _ := square.Parse("d2")
	to, _ := square.Parse("d4")

	before := len(g.History())
	pos, err := g.Apply(from, to, nil)
	if err != nil {
		t.Fatalf("Apply returned an error: %v", err)
	}
	if pos.Turn == piece.Red {
		t.Error("turn should have advanced off red after red's move")
	}
	if len(g.History()) != before+1 {
		t.Errorf("History() length = %d, want %d", len(g.History()), before+1)
	}
}

func TestApplyFromAnEmptySquareErrors(t *testing.T) {
	g := newGame()
	// d4 is empty at the start (red's pawns sit on row 12/rank 2).
	from, _ := square.Parse("d4")
	to, _ := square.Parse("d5")

	if _, err := g.Apply(from, to, nil); err == nil {
		t.Error("moving from an empty square should error")
	}
}

func TestApplyOutOfTurnErrors(t *testing.T) {
	g := newGame()
	// d13 is one of yellow's pawns, but it isn't yellow's turn yet.
	from, _ := square.Parse("d13")
	to, _ := square.Parse("d11")

	if _, err := g.Apply(from, to, nil); err == nil {
		t.Error("moving another color's piece out of turn should error")
	}
}

func TestResignEliminatesTheColorAndAdvancesTurnIfItWasTheirs(t *testing.T) {
	g := newGame()
	pos := g.Resign(piece.Red)

	if !pos.Eliminated[piece.Red] {
		t.Fatal("resigned color should be marked eliminated")
	}
	if pos.Turn == piece.Red {
		t.Error("turn should have advanced off the resigned color")
	}
}

func TestResignIsIdempotent(t *testing.T) {
	g := newGame()
	g.Resign(piece.Red)
	pos := g.Resign(piece.Red)

	if !pos.Eliminated[piece.Red] {
		t.Fatal("resigned color should still be marked eliminated")
	}
}

func TestResetRestoresTheInitialPosition(t *testing.T) {
	g := newGame()
	from, _ := square.Parse("d2")
	to, _ := square.Parse("d4")
	if _, err := g.Apply(from, to, nil); err != nil {
		t.Fatalf("Apply returned an error: %v", err)
	}

	pos := g.Reset()
	if pos.Turn != piece.Red {
		t.Errorf("Turn after Reset() = %v, want Red", pos.Turn)
	}
	if g.Status() != quadchess.StatusActive {
		t.Errorf("Status() after Reset() = %v, want StatusActive", g.Status())
	}
}

func TestSelectableMovesFromAFriendlyPieceIsNonEmpty(t *testing.T) {
	g := newGame()
	from, _ := square.Parse("d2")

	moves, err := g.SelectableMoves(from)
	if err != nil {
		t.Fatalf("SelectableMoves returned an error: %v", err)
	}
	if len(moves) == 0 {
		t.Error("a red pawn on its home square should have selectable moves")
	}
}
