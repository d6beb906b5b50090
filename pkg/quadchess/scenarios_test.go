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
	"testing"

	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// recordingSink is a NotificationSink that remembers every Betrayal,
// Eliminated, and GameOver call so tests can assert on them without
// standing up a real presentation layer.
type recordingSink struct {
	NopSink
	betrayals  [][2]piece.Color
	eliminated []board.EliminatedEntry
	gameOvers  []GameResult
}

func (s *recordingSink) Betrayal(attacker, victim piece.Color) {
	s.betrayals = append(s.betrayals, [2]piece.Color{attacker, victim})
}

func (s *recordingSink) Eliminated(color piece.Color, reason string) {
	s.eliminated = append(s.eliminated, board.EliminatedEntry{Color: color, Reason: reason})
}

func (s *recordingSink) GameOver(result GameResult) {
	s.gameOvers = append(s.gameOvers, result)
}

// TestCommitNotifiesBetrayalInsteadOfScoringATeammateCapture drives a
// real capture through Game.Apply/commit where the capturing and
// captured pieces share a team, checking commit takes the
// spec.md §4.4 team-mode branch (pkg/quadchess/ops.go's commit) that
// calls sink.Betrayal instead of crediting the capturing color's
// score, rather than only checking Team() pairs up colors in
// isolation.
func TestCommitNotifiesBetrayalInsteadOfScoringATeammateCapture(t *testing.T) {
	pos := board.NewEmpty()
	pos.Place(square.New(13, 7), piece.New(piece.Red, piece.King))
	pos.Place(square.New(0, 7), piece.New(piece.Yellow, piece.King))
	pos.Place(square.New(7, 7), piece.New(piece.Red, piece.Pawn))
	pos.Place(square.New(6, 8), piece.New(piece.Yellow, piece.Pawn))
	pos.Turn = piece.Red
	pos.TeamMode = true
	pos.TeamAssignments = [piece.ColorN]int{piece.Red: 0, piece.Blue: 1, piece.Yellow: 0, piece.Green: 1}
	pos.Eliminated[piece.Blue] = true
	pos.Eliminated[piece.Green] = true
	pos.RecomputeDerived()
	pos.Hash = pos.RecomputeHash()

	sink := &recordingSink{}
	g := &Game{
		pos:             pos,
		status:          StatusActive,
		history:         []*board.Position{pos},
		promoMode:       PromotionAsynchronous,
		teamMode:        true,
		teamAssignments: pos.TeamAssignments,
		clock:           &systemClock{},
		sink:            sink,
	}

	from, to := square.New(7, 7), square.New(6, 8)
	if _, err := g.Apply(from, to, nil); err != nil {
		t.Fatalf("Apply returned an error: %v", err)
	}

	if len(sink.betrayals) != 1 {
		t.Fatalf("betrayals recorded = %d, want 1", len(sink.betrayals))
	}
	if sink.betrayals[0] != [2]piece.Color{piece.Red, piece.Yellow} {
		t.Errorf("betrayal = %v, want {Red, Yellow}", sink.betrayals[0])
	}
	if g.pos.Scores[piece.Red] != 0 {
		t.Errorf("Scores[Red] = %d, want 0: a teammate capture should not score", g.pos.Scores[piece.Red])
	}
}

// TestApplyTimeoutEliminatesTheColorAndAdvancesTurnIfItWasTheirs
// mirrors the existing Resign coverage for ApplyTimeout, the sibling
// spec.md §6.2 path ops.go implements identically aside from the
// recorded elimination reason.
func TestApplyTimeoutEliminatesTheColorAndAdvancesTurnIfItWasTheirs(t *testing.T) {
	g := Initial(false, [piece.ColorN]int{}, 0)
	pos := g.ApplyTimeout(piece.Red)

	if !pos.Eliminated[piece.Red] {
		t.Fatal("timed-out color should be marked eliminated")
	}
	if pos.Turn == piece.Red {
		t.Error("turn should have advanced off the timed-out color")
	}

	found := false
	for _, e := range pos.EliminatedPlayers {
		if e.Color == piece.Red && e.Reason == board.ReasonTimeout {
			found = true
		}
	}
	if !found {
		t.Error("EliminatedPlayers should record red's elimination reason as timeout")
	}
}

// TestApplyTimeoutIsIdempotent mirrors TestResignIsIdempotent: calling
// ApplyTimeout again on an already-eliminated color is a no-op, not a
// second elimination entry.
func TestApplyTimeoutIsIdempotent(t *testing.T) {
	g := Initial(false, [piece.ColorN]int{}, 0)
	g.ApplyTimeout(piece.Red)
	pos := g.ApplyTimeout(piece.Red)

	count := 0
	for _, e := range pos.EliminatedPlayers {
		if e.Color == piece.Red {
			count++
		}
	}
	if count != 1 {
		t.Errorf("red appears %d times in EliminatedPlayers, want 1", count)
	}
}

// TestResolveTerminalEliminatesAMatedColorAndFinishesTheGame builds
// the same cornered-king checkmate pkg/board/scenarios_test.go checks
// at the LegalMoves level, but here drives it through
// Game.resolveTerminal directly to check the state-machine layer on
// top: the mated color is eliminated with reason checkmate, and since
// only one color is then left active the game transitions to
// StatusFinished with that color as the winner.
func TestResolveTerminalEliminatesAMatedColorAndFinishesTheGame(t *testing.T) {
	pos := board.NewEmpty()
	pos.Place(square.New(13, 3), piece.New(piece.Red, piece.King))
	pos.Place(square.New(13, 6), piece.New(piece.Yellow, piece.Rook))
	pos.Place(square.New(11, 4), piece.New(piece.Yellow, piece.Queen))
	pos.Place(square.New(0, 7), piece.New(piece.Yellow, piece.King))
	pos.Turn = piece.Red
	pos.Eliminated[piece.Blue] = true
	pos.Eliminated[piece.Green] = true
	pos.RecomputeDerived()
	pos.Hash = pos.RecomputeHash()

	if !pos.CheckStatus[piece.Red] || len(pos.LegalMoves()) != 0 {
		t.Fatal("setup should be a checkmate for red")
	}

	sink := &recordingSink{}
	g := &Game{
		pos:       pos,
		status:    StatusActive,
		history:   []*board.Position{pos},
		promoMode: PromotionAsynchronous,
		clock:     &systemClock{},
		sink:      sink,
	}

	g.resolveTerminal(pos)

	if !pos.Eliminated[piece.Red] {
		t.Fatal("checkmated red should be eliminated")
	}
	if len(sink.eliminated) != 1 || sink.eliminated[0].Color != piece.Red || sink.eliminated[0].Reason != board.ReasonCheckmate {
		t.Fatalf("eliminated notifications = %v, want one red/checkmate entry", sink.eliminated)
	}
	if g.status != StatusFinished {
		t.Fatalf("Status() = %v, want StatusFinished once only yellow remains", g.status)
	}
	if len(sink.gameOvers) != 1 || !sink.gameOvers[0].HasWinner || sink.gameOvers[0].Winner != piece.Yellow {
		t.Fatalf("game-over notifications = %v, want a single yellow-wins result", sink.gameOvers)
	}
}

// TestResolveTerminalEliminatesAStalematedColor is the stalemate
// counterpart: no check, but still no legal moves, which this variant
// (spec.md §4.4) treats as elimination exactly like checkmate.
func TestResolveTerminalEliminatesAStalematedColor(t *testing.T) {
	pos := board.NewEmpty()
	pos.Place(square.New(13, 3), piece.New(piece.Red, piece.King))
	pos.Place(square.New(11, 4), piece.New(piece.Yellow, piece.Queen))
	pos.Place(square.New(0, 7), piece.New(piece.Yellow, piece.King))
	pos.Turn = piece.Red
	pos.Eliminated[piece.Blue] = true
	pos.Eliminated[piece.Green] = true
	pos.RecomputeDerived()
	pos.Hash = pos.RecomputeHash()

	if pos.CheckStatus[piece.Red] || len(pos.LegalMoves()) != 0 {
		t.Fatal("setup should be a stalemate for red")
	}

	sink := &recordingSink{}
	g := &Game{
		pos:       pos,
		status:    StatusActive,
		history:   []*board.Position{pos},
		promoMode: PromotionAsynchronous,
		clock:     &systemClock{},
		sink:      sink,
	}

	g.resolveTerminal(pos)

	if !pos.Eliminated[piece.Red] {
		t.Fatal("stalemated red should be eliminated")
	}
	if len(sink.eliminated) != 1 || sink.eliminated[0].Reason != board.ReasonStalemate {
		t.Fatalf("eliminated notifications = %v, want one stalemate entry", sink.eliminated)
	}
	if g.status != StatusFinished {
		t.Fatalf("Status() = %v, want StatusFinished once only yellow remains", g.status)
	}
}
