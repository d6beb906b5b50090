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

package board_test

import (
	"testing"

	"github.com/godwin-jg/quadrachess/pkg/board"
)

// TestPerftDepthZeroIsOne checks the recursion's base case, the
// convention perft tooling universally relies on.
func TestPerftDepthZeroIsOne(t *testing.T) {
	pos := board.Initial()
	if got := pos.Perft(0); got != 1 {
		t.Errorf("Perft(0) = %d, want 1", got)
	}
}

// TestPerftDepthOneMatchesLegalMoveCount checks Perft(1) agrees with
// a direct count of LegalMoves, the identity Perft's depth-1 base
// case is defined by.
func TestPerftDepthOneMatchesLegalMoveCount(t *testing.T) {
	pos := board.Initial()
	want := uint64(len(pos.LegalMoves()))
	if got := pos.Perft(1); got != want {
		t.Errorf("Perft(1) = %d, want %d (len(LegalMoves()))", got, want)
	}
}

// TestPerftDivideSumsToPerft checks Divide's per-move breakdown sums
// to the same total Perft reports for the same depth, the property
// that makes Divide useful for localizing a move generator bug
// against a reference's per-move counts.
func TestPerftDivideSumsToPerft(t *testing.T) {
	pos := board.Initial()
	divide := pos.Divide(2)

	var sum uint64
	for _, count := range divide {
		sum += count
	}

	want := pos.Perft(2)
	if sum != want {
		t.Errorf("sum of Divide(2) = %d, want Perft(2) = %d", sum, want)
	}
}

// TestInitialPositionHasLegalMovesForRed checks the starting position
// isn't accidentally stalemated or check-mated for the color to move.
func TestInitialPositionHasLegalMovesForRed(t *testing.T) {
	pos := board.Initial()
	if len(pos.LegalMoves()) == 0 {
		t.Fatal("initial position has no legal moves for red")
	}
}
