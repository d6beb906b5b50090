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
)

func TestSearchParallelReturnsALegalMove(t *testing.T) {
	pos := board.Initial()

	pv, _, err := SearchParallel(pos, Limits{Depth: 2}, 3)
	if err != nil {
		t.Fatalf("SearchParallel returned an error: %v", err)
	}

	best := pv.Best()
	if best == move.Null {
		t.Fatal("SearchParallel returned no best move")
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
		t.Errorf("SearchParallel returned %s, which is not among the %d legal moves", best, len(legal))
	}
}

func TestSearchParallelSingleWorkerMatchesContext(t *testing.T) {
	pos := board.Initial()

	pv, _, err := SearchParallel(pos, Limits{Depth: 1}, 1)
	if err != nil {
		t.Fatalf("SearchParallel with one worker returned an error: %v", err)
	}
	if pv.Best() == move.Null {
		t.Error("SearchParallel with one worker returned no best move")
	}
}
