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
	"github.com/godwin-jg/quadrachess/internal/xerrors"
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// SelectableMoves returns the legal moves available to the piece on
// sq, implementing spec.md §4.4's selectPiece: rejecting an empty
// square, an off-turn color, and an eliminated color's piece.
func (g *Game) SelectableMoves(sq square.Square) ([]move.Move, error) {
	p := g.pos.PieceAt(sq)
	if p.IsNone() {
		return nil, xerrors.ErrNoSuchPiece
	}
	if p.Color() != g.pos.Turn || g.pos.Eliminated[p.Color()] {
		return nil, xerrors.ErrNotYourTurn
	}
	var out []move.Move
	for _, m := range g.pos.LegalMoves() {
		if m.Source() == sq {
			out = append(out, m)
		}
	}
	return out, nil
}

// candidatesBetween narrows the legal move list to those sharing the
// given source and target, which may be more than one move when the
// move is a promotion (one candidate per promotion piece type).
func candidatesBetween(pos *board.Position, from, to square.Square) []move.Move {
	var out []move.Move
	for _, m := range pos.LegalMoves() {
		if m.Source() == from && m.Target() == to {
			out = append(out, m)
		}
	}
	return out
}

// Apply implements spec.md §4.4's makeMove: validate, resolve a
// pending promotion choice (synchronously or by entering
// StatusAwaitingPromotion), commit the move, and run turn advance,
// scoring, elimination, and clock bookkeeping. promotionChoice may be
// nil when the move is not a promotion or the caller defers the
// choice to CompletePromotion.
func (g *Game) Apply(from, to square.Square, promotionChoice *piece.Type) (*board.Position, error) {
	if g.status == StatusFinished {
		return nil, xerrors.ErrIllegalMove
	}
	if g.promotion != nil {
		return nil, xerrors.ErrIllegalMove
	}

	mover := g.pos.PieceAt(from)
	if mover.IsNone() {
		return nil, xerrors.ErrNoSuchPiece
	}
	if mover.Color() != g.pos.Turn || g.pos.Eliminated[mover.Color()] {
		return nil, xerrors.ErrNotYourTurn
	}

	candidates := candidatesBetween(g.pos, from, to)
	if len(candidates) == 0 {
		return nil, xerrors.ErrIllegalMove
	}

	if !candidates[0].IsPromotion() {
		return g.commit(candidates[0])
	}

	if promotionChoice != nil {
		for _, c := range candidates {
			if t, ok := c.Promotion(); ok && t == *promotionChoice {
				return g.commit(c)
			}
		}
		return nil, xerrors.ErrIllegalMove
	}

	if g.promoMode == PromotionSynchronous {
		return nil, xerrors.ErrPromotionRequired
	}

	g.promotion = &PendingPromotion{From: from, To: to, Color: mover.Color()}
	g.status = StatusAwaitingPromotion
	return g.pos, xerrors.ErrPromotionRequired
}

// CompletePromotion resolves a pending async promotion recorded by
// Apply, choosing the promoted-to piece type and committing the move.
func (g *Game) CompletePromotion(choice piece.Type) (*board.Position, error) {
	if g.promotion == nil {
		return nil, xerrors.ErrNoPendingPromotion
	}
	pending := *g.promotion
	candidates := candidatesBetween(g.pos, pending.From, pending.To)
	for _, c := range candidates {
		if t, ok := c.Promotion(); ok && t == choice {
			g.promotion = nil
			return g.commit(c)
		}
	}
	return nil, xerrors.ErrIllegalMove
}

// commit applies m to a clone of the live position, running the full
// spec.md §4.4 steps 6-11 pipeline: board mutation, scoring, turn
// advance, derived-state recomputation, elimination/game-over
// detection, and clock accounting. It replaces g.pos and appends the
// result to history.
func (g *Game) commit(m move.Move) (*board.Position, error) {
	next := g.pos.Clone()
	rec := next.Apply(m)

	if rec.Captured != piece.None {
		next.CapturedPieces[rec.Color] = append(next.CapturedPieces[rec.Color], rec.Captured)
		if next.TeamMode && next.TeamAssignments[rec.Color] == next.TeamAssignments[rec.Captured.Color()] {
			g.sink.Betrayal(rec.Color, rec.Captured.Color())
		} else {
			next.Scores[rec.Color] += rec.Captured.Type().Value()
		}
	}

	newTurn := next.NextActive(rec.Color)
	next.Turn = newTurn
	next.ExpireEnPassants(newTurn)
	next.RecomputeDerived()

	now := g.now()
	elapsed := now - g.pos.TurnStartedAt
	next.Clocks[rec.Color] -= elapsed
	if next.Clocks[rec.Color] < 0 {
		next.Clocks[rec.Color] = 0
	}
	next.TurnStartedAt = now
	next.Hash = next.RecomputeHash()
	next.Version++

	g.sink.MoveApplied(next, rec)
	if next.CheckStatus[newTurn] {
		g.sink.CheckAnnounced(newTurn)
	}

	g.resolveTerminal(next)

	g.pos = next
	if g.status != StatusFinished {
		g.status = StatusActive
	}
	g.history = append(g.history, next)
	return next, nil
}

// Resign removes color from the game immediately, as if eliminated
// by resignation (spec.md §6.1), advancing the turn if it was color's
// and running the same terminal-detection sweep a move commit does.
func (g *Game) Resign(color piece.Color) *board.Position {
	next := g.pos.Clone()
	if next.Eliminated[color] {
		return next
	}

	wasTurn := next.Turn == color
	g.eliminateColorOnBoard(next, color, board.ReasonResignation)
	if wasTurn {
		next.Turn = next.NextActive(color)
		next.ExpireEnPassants(next.Turn)
	}
	next.RecomputeDerived()
	next.Hash = next.RecomputeHash()
	next.Version++

	if g.promotion != nil && g.promotion.Color == color {
		g.promotion = nil
	}

	g.resolveTerminal(next)

	g.pos = next
	if g.status != StatusFinished {
		g.status = StatusActive
	}
	g.history = append(g.history, next)
	return next
}

// ApplyTimeout removes color from the game for running out of clock
// time (spec.md §6.2), otherwise identical to Resign.
func (g *Game) ApplyTimeout(color piece.Color) *board.Position {
	next := g.pos.Clone()
	if next.Eliminated[color] {
		return next
	}

	wasTurn := next.Turn == color
	g.eliminateColorOnBoard(next, color, board.ReasonTimeout)
	if wasTurn {
		next.Turn = next.NextActive(color)
		next.ExpireEnPassants(next.Turn)
	}
	next.RecomputeDerived()
	next.Hash = next.RecomputeHash()
	next.Version++

	if g.promotion != nil && g.promotion.Color == color {
		g.promotion = nil
	}

	g.resolveTerminal(next)

	g.pos = next
	if g.status != StatusFinished {
		g.status = StatusActive
	}
	g.history = append(g.history, next)
	return next
}

// Reset restarts the game at the initial position, preserving the
// team configuration, clock budget, and host-supplied Clock/sink.
func (g *Game) Reset() *board.Position {
	pos := board.Initial()
	pos.TeamMode = g.teamMode
	pos.TeamAssignments = g.teamAssignments
	for _, c := range piece.Colors {
		pos.Clocks[c] = g.initialClockMS
	}
	g.pos = pos
	g.status = StatusActive
	g.promotion = nil
	g.history = []*board.Position{pos}
	return pos
}
