// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package search implements the bot's move search: iterative
// deepening over a paranoid multiplayer alpha-beta (spec.md §4.6),
// grounded on the teacher's pkg/search package. Unlike the teacher's
// two-color negamax, a node's score is always reported from the
// fixed rootColor's point of view rather than the side to move's, so
// the tree alternates between explicit maximizing nodes (rootColor to
// move) and minimizing nodes (anyone else to move, modeled as a
// single hostile coalition against rootColor) instead of negamax's
// uniform sign flip, which assumes the strict two-player zero-sum
// evaluator negamax depends on; eval.Evaluate's N-color
// "symmetric-sum" rule does not provide that.
package search

import (
	"errors"

	"github.com/godwin-jg/quadrachess/internal/util"
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/eval"
	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/search/searchtime"
	"github.com/godwin-jg/quadrachess/pkg/search/tt"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// MaxDepth is the deepest ply the iterative deepening loop will run
// to, a backstop against runaway searches rather than a depth anyone
// expects to reach.
const MaxDepth = 128

// NewContext creates a new Context to search from pos. A Context
// should be reused across consecutive searches within the same game
// (to keep its transposition table and history heuristics warm) and
// replaced with a fresh one between unrelated games.
func NewContext(pos *board.Position) *Context {
	return &Context{
		Board:   pos,
		tt:      tt.NewTable(16),
		stopped: true,
	}
}

// Context stores the state of one search: its transposition table,
// move-ordering heuristics, and debug counters. Searches on the same
// game should reuse a Context, swapping out (*Context).Board between
// calls to Search.
type Context struct {
	// search state
	Board     *board.Position
	rootColor piece.Color // fixed perspective for the whole tree
	tt        *tt.Table
	depth     int // current iterative deepening depth
	stopped   bool

	// move ordering heuristics
	killers [MaxDepth][2]move.Move
	history [piece.ColorN][square.N][square.N]int32

	// stats
	ttHits int
	nodes  int

	// search limits
	limits Limits
	time   searchtime.Manager

	// rootMoves accumulates each root move's score as the
	// in-progress iteration visits it; lastRootMoves is the most
	// recent iteration that ran to completion, the slice RootMoves
	// exposes to callers (see root.go).
	rootMoves     []RootMove
	lastRootMoves []RootMove
}

// Search initializes the context for a new search from search.Board
// and runs the main iterative deepening loop, returning the best line
// found and its evaluation from search.Board's side to move's point
// of view.
func (search *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	if len(search.Board.ActiveColors()) == 0 {
		return move.Variation{}, 0, errors.New("search: no active colors on board")
	}

	search.start(limits)
	defer search.Stop()

	if len(search.Board.LegalMoves()) == 0 {
		return move.Variation{}, 0, errors.New("search: side to move has no legal moves")
	}

	pv, score := search.iterativeDeepening()
	return pv, score, nil
}

// ClearTT wipes the context's transposition table, the reset
// spec.md §4.6.8 asks for before a bot retries move selection after a
// validation failure, in case a stale entry is what steered it toward
// the now-invalid move.
func (search *Context) ClearTT() {
	search.tt.Clear()
}

// InProgress reports whether a search is currently in progress on
// this context.
func (search *Context) InProgress() bool {
	return !search.stopped
}

// Stop halts any ongoing search; the main search function returns as
// soon as it next checks shouldStop.
func (search *Context) Stop() {
	search.stopped = true
}

// start initializes search state for a new run.
func (search *Context) start(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	if limits.Depth <= 0 {
		limits.Depth = MaxDepth
	}
	search.limits = limits
	search.rootColor = search.Board.Turn

	search.nodes = 0
	search.ttHits = 0
	search.killers = [MaxDepth][2]move.Move{}

	search.stopped = false
	search.time = limits.manager(search.rootColor)
	search.time.GetDeadline()

	search.tt.NextEpoch()
}

// shouldStop checks the search's limits and reports whether the
// search should halt now.
func (search *Context) shouldStop() bool {
	switch {
	case search.stopped:
		return true

	case search.nodes&2047 != 0, search.limits.Infinite:
		// only check once every 2048 nodes so the clock read
		// itself doesn't dominate search time
		return false

	case search.limits.Nodes != 0 && search.nodes > search.limits.Nodes, search.time.Expired():
		search.Stop()
		return true

	default:
		return false
	}
}

// score statically evaluates pos from search.rootColor's point of
// view; any change to which evaluator the bot uses belongs here.
func (search *Context) score(pos *board.Position) eval.Eval {
	return eval.Evaluate(pos, search.rootColor)
}
