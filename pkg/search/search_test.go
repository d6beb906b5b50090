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
	"github.com/godwin-jg/quadrachess/pkg/eval"
	"github.com/godwin-jg/quadrachess/pkg/move"
)

// TestSearchFindsALegalMoveFromStartingPosition runs a shallow,
// depth-limited search from the initial four-player position and
// checks it returns a move that is actually in the legal move list,
// a finite score, and no error.
func TestSearchFindsALegalMoveFromStartingPosition(t *testing.T) {
	pos := board.Initial()
	ctx := NewContext(pos)

	pv, score, err := ctx.Search(Limits{Depth: 2})
	if err != nil {
		t.Fatalf("search returned an error on the starting position: %v", err)
	}

	best := pv.Best()
	if best == move.Null {
		t.Fatal("search returned no best move")
	}

	legal := pos.LegalMoves()
	found := false
	for _, m := range legal {
		if m == best {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("search returned %s, which is not among the %d legal moves", best, len(legal))
	}

	if score <= -eval.Inf || score >= eval.Inf {
		t.Errorf("search returned a non-finite score %s", score)
	}
}

// TestSearchErrorsWithNoLegalMoves constructs a position with zero
// active colors (every seat eliminated) and checks Search reports an
// error rather than panicking or searching an empty board forever.
func TestSearchErrorsWithNoLegalMoves(t *testing.T) {
	pos := board.Initial()
	for i := range pos.Eliminated {
		pos.Eliminated[i] = true
	}

	ctx := NewContext(pos)
	if _, _, err := ctx.Search(Limits{Depth: 1}); err == nil {
		t.Error("search with every color eliminated should return an error")
	}
}

// TestIterativeDeepeningStopsAtDepthLimit checks that a depth-1 search
// does not silently run deeper iterations. search.depth is left one
// past the requested limit, since it is the shared for-loop variable
// and its last increment runs before the loop condition fails it.
func TestIterativeDeepeningStopsAtDepthLimit(t *testing.T) {
	pos := board.Initial()
	ctx := NewContext(pos)

	if _, _, err := ctx.Search(Limits{Depth: 1}); err != nil {
		t.Fatalf("depth-1 search errored: %v", err)
	}
	if ctx.depth != 2 {
		t.Errorf("search's final loop variable was %d, want 2 (1 requested + 1 failed-condition increment)", ctx.depth)
	}
}
