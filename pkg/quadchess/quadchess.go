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

// Package quadchess is the public core API of spec.md §6.1: a game
// state machine (spec.md §4.4) wrapping an immutable board.Position,
// exposing selectPiece/apply/resign/timeout/promotion/reset as plain
// methods over copy-on-write state. It is grounded on the teacher's
// Board.MakeMove/UnmakeMove mutation pattern, generalized into
// copy-on-write (each mutating call returns a new *board.Position
// rather than mutating and later unmaking) plus new turn sequencing,
// elimination, scoring, clock, and team-mode logic the 2-player
// teacher has no analogue for.
package quadchess

import (
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// Status is the coarse game-state-machine status of spec.md §4.4.
type Status string

const (
	StatusWaiting            Status = "waiting"
	StatusActive             Status = "active"
	StatusAwaitingPromotion  Status = "awaitingPromotion"
	StatusFinished           Status = "finished"
)

// Clock is the host-provided monotonic clock source of spec.md §6.2.
type Clock interface {
	NowMS() int64
}

// systemClock is the default Clock when the host supplies none; kept
// unexported since production hosts should inject their own (a
// server-authoritative clock in networked games, per spec.md §6.2).
type systemClock struct{ ms int64 }

func (c *systemClock) NowMS() int64 { c.ms++; return c.ms }

// PendingPromotion is the substate recorded while the game awaits an
// asynchronous promotion choice (spec.md §4.4's "promotionState").
type PendingPromotion struct {
	From, To square.Square
	Color    piece.Color
}

// PromotionMode selects whether apply requires the promotion choice
// up front (Synchronous) or may leave the game awaiting one
// (Asynchronous), per spec.md §4.4.
type PromotionMode int

const (
	PromotionSynchronous PromotionMode = iota
	PromotionAsynchronous
)

// Game is the mutable game-state-machine wrapper around an immutable
// *board.Position: it owns turn/elimination/score bookkeeping that
// spans multiple positions, history for backward navigation
// (spec.md §3.6), and the optional async-promotion substate.
type Game struct {
	pos    *board.Position
	status Status

	history []*board.Position

	promotion *PendingPromotion
	promoMode PromotionMode

	teamMode        bool
	teamAssignments [piece.ColorN]int
	initialClockMS  int64

	clock Clock
	sink  NotificationSink
}

// NotificationSink receives the optional presentation events of
// spec.md §6.2; the core never calls into UI/sound/network code
// directly, only this interface.
type NotificationSink interface {
	MoveApplied(pos *board.Position, rec board.MoveRecord)
	CheckAnnounced(color piece.Color)
	Eliminated(color piece.Color, reason string)
	GameOver(result GameResult)
	Betrayal(attacker, victim piece.Color)
}

// GameResult describes how a finished game ended.
type GameResult struct {
	TeamMode     bool
	Winner       piece.Color // valid if !TeamMode
	HasWinner    bool
	WinningTeam  int // valid if TeamMode && HasWinner
}

// NopSink is a NotificationSink that discards every event, useful
// when a host doesn't care about presentation callbacks.
type NopSink struct{}

func (NopSink) MoveApplied(*board.Position, board.MoveRecord) {}
func (NopSink) CheckAnnounced(piece.Color)                    {}
func (NopSink) Eliminated(piece.Color, string)                {}
func (NopSink) GameOver(GameResult)                           {}
func (NopSink) Betrayal(piece.Color, piece.Color)             {}

// Initial builds a new game at the standard starting position
// (spec.md §6.1's initial(mode, teamConfig?)). teamAssignments is
// only consulted when teamMode is true; by convention 0/1 partitions
// the four colors into the two teams.
func Initial(teamMode bool, teamAssignments [piece.ColorN]int, clockMS int64) *Game {
	pos := board.Initial()
	pos.TeamMode = teamMode
	pos.TeamAssignments = teamAssignments
	for _, c := range piece.Colors {
		pos.Clocks[c] = clockMS
	}
	g := &Game{
		pos:             pos,
		status:          StatusActive,
		teamMode:        teamMode,
		teamAssignments: teamAssignments,
		initialClockMS:  clockMS,
		clock:           &systemClock{},
		sink:            NopSink{},
		promoMode:       PromotionAsynchronous,
	}
	g.history = append(g.history, pos)
	return g
}

// SetClock injects a host-provided clock source (spec.md §6.2).
func (g *Game) SetClock(c Clock) { g.clock = c }

// SetNotificationSink injects a host-provided notification sink
// (spec.md §6.2).
func (g *Game) SetNotificationSink(s NotificationSink) {
	if s == nil {
		s = NopSink{}
	}
	g.sink = s
}

// SetPromotionMode selects synchronous vs asynchronous promotion
// handling (spec.md §4.4); caller-selected, so this may be changed
// between games but not mid-promotion.
func (g *Game) SetPromotionMode(m PromotionMode) { g.promoMode = m }

// Position returns the current live position. Mutating it directly
// is a misuse of the API: treat the return value as read-only.
func (g *Game) Position() *board.Position { return g.pos }

// Status returns the game-state-machine status (spec.md §4.4).
func (g *Game) Status() Status { return g.status }

// Pending returns the pending async promotion, if any.
func (g *Game) Pending() (PendingPromotion, bool) {
	if g.promotion == nil {
		return PendingPromotion{}, false
	}
	return *g.promotion, true
}

// History returns every committed position in order, index 0 being
// the initial position (spec.md §3.6).
func (g *Game) History() []*board.Position { return g.history }

func (g *Game) now() int64 { return g.clock.NowMS() }
