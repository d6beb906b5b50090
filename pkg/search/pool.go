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
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/eval"
	"github.com/godwin-jg/quadrachess/pkg/move"
	"golang.org/x/sync/errgroup"
)

// SearchParallel runs workers independent Lazy-SMP-style searches of
// pos (https://www.chessprogramming.org/Lazy_SMP) and returns the line
// reported by whichever worker reached the greatest depth, ties broken
// by the lowest worker index. Each worker gets its own Context (and so its
// own transposition table and move-ordering heuristics) rather than
// sharing search.Board's tt.Table across goroutines, since Table's
// Store/Probe do unsynchronized reads and writes of its slot slice.
// workers <= 1 runs a single search with no goroutines at all.
func SearchParallel(pos *board.Position, limits Limits, workers int) (move.Variation, eval.Eval, error) {
	if workers <= 1 {
		return NewContext(pos).Search(limits)
	}

	type result struct {
		pv    move.Variation
		score eval.Eval
		depth int
	}

	results := make([]result, workers)
	errs := make([]error, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			ctx := NewContext(pos)
			pv, score, err := ctx.Search(limits)
			results[i] = result{pv: pv, score: score, depth: ctx.depth}
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	best := -1
	for i, e := range errs {
		if e != nil {
			continue
		}
		if best == -1 || results[i].depth > results[best].depth {
			best = i
		}
	}
	if best == -1 {
		return move.Variation{}, 0, errs[0]
	}
	return results[best].pv, results[best].score, nil
}
