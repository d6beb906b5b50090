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

package quadchess

import (
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/piece"
)

// resolveTerminal implements spec.md §4.4 step 9: while the side to
// move has no legal moves, eliminate them (checkmate if in check,
// stalemate otherwise) and advance to the next active color, then
// check again, until either a side with moves is found or the game
// ends. Most games resolve this in zero iterations; the loop exists
// for the rare simultaneous-elimination edge case spec.md doesn't
// rule out (e.g. a color stalemated the instant it becomes its turn
// again after its only neighbor's elimination).
func (g *Game) resolveTerminal(next *board.Position) {
	for i := 0; i < piece.ColorN; i++ {
		if g.isGameOver(next) {
			g.finish(next)
			return
		}
		cur := next.Turn
		if next.Eliminated[cur] {
			return
		}
		if len(next.LegalMoves()) > 0 {
			return
		}

		reason := board.ReasonStalemate
		if next.CheckStatus[cur] {
			reason = board.ReasonCheckmate
		}
		g.eliminateColorOnBoard(next, cur, reason)
		if reason == board.ReasonCheckmate && next.LastMove != nil {
			next.Scores[next.LastMove.Color] += 20
		}

		if g.isGameOver(next) {
			g.finish(next)
			return
		}

		next.Turn = next.NextActive(cur)
		next.ExpireEnPassants(next.Turn)
		next.RecomputeDerived()
	}
}

func (g *Game) eliminateColorOnBoard(next *board.Position, c piece.Color, reason string) {
	next.Eliminate(c)
	next.ClearEnPassantsOf(c)
	next.EliminatedPlayers = append(next.EliminatedPlayers, board.EliminatedEntry{Color: c, Reason: reason})
	g.sink.Eliminated(c, reason)
}

// isGameOver reports spec.md §4.4's end conditions: in team mode, one
// entire team eliminated; otherwise, at most one color remains.
func (g *Game) isGameOver(next *board.Position) bool {
	active := next.ActiveColors()
	if next.TeamMode {
		teamAlive := [2]bool{}
		for _, c := range active {
			teamAlive[next.TeamAssignments[c]] = true
		}
		return !teamAlive[0] || !teamAlive[1]
	}
	return len(active) <= 1
}

func (g *Game) finish(next *board.Position) {
	g.status = StatusFinished
	result := GameResult{TeamMode: next.TeamMode}
	active := next.ActiveColors()
	if next.TeamMode {
		teamAlive := [2]bool{}
		for _, c := range active {
			teamAlive[next.TeamAssignments[c]] = true
		}
		switch {
		case teamAlive[0] && !teamAlive[1]:
			result.HasWinner = true
			result.WinningTeam = 0
		case teamAlive[1] && !teamAlive[0]:
			result.HasWinner = true
			result.WinningTeam = 1
		}
	} else if len(active) == 1 {
		result.HasWinner = true
		result.Winner = active[0]
	}
	g.sink.GameOver(result)
}
