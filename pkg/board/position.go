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

// Package board holds the authoritative position type of spec.md §3.4
// (Position, called Board in the teacher) together with attack/pin
// derivation and move generation. It is generalized from the
// teacher's 2-color 8x8 Board in pkg/board/board.go and
// moveGenState.go to 4 colors over the 160-square cross board.
package board

import (
	"github.com/godwin-jg/quadrachess/pkg/attacks"
	"github.com/godwin-jg/quadrachess/pkg/bitboard"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
	"github.com/godwin-jg/quadrachess/pkg/zobrist"
)

// EnPassantTarget is one live en-passant opportunity (spec.md §3.4).
type EnPassantTarget struct {
	Square  square.Square
	Creator piece.Color
}

// MoveRecord is the spec.md §3.4 lastMove entry.
type MoveRecord struct {
	From, To              square.Square
	Piece, Captured       piece.Piece
	Color                 piece.Color
	Timestamp             int64
	IsCastling            bool
	IsEnPassant           bool
	IsPromotion           bool
}

// Position is the complete authoritative game state of spec.md §3.4.
// It is deliberately a flat value type: copying a Position (Clone)
// deep-copies everything needed for copy-on-write semantics at the
// quadchess API boundary.
type Position struct {
	PieceBB  [piece.ColorN][piece.TypeN]bitboard.Board
	ColorBB  [piece.ColorN]bitboard.Board
	Occupied bitboard.Board
	Mailbox  [square.N]piece.Piece

	// EliminatedPieceBB retains a snapshot of an eliminated color's
	// pieces for display purposes only (spec.md §3.4: "Eliminated
	// pieces are visually retained but removed from all generation/
	// attack logic"); it is never consulted by movegen or attacks.
	EliminatedPieceBB [piece.ColorN][piece.TypeN]bitboard.Board

	Turn       piece.Color
	Eliminated [piece.ColorN]bool

	KingMoved          [piece.ColorN]bool
	KingsideRookMoved  [piece.ColorN]bool
	QueensideRookMoved [piece.ColorN]bool

	EnPassant []EnPassantTarget

	// Derived/cached fields (spec.md §3.4): must be recomputed after
	// every committed mutation by RecomputeDerived.
	AttackMaps  [piece.ColorN]bitboard.Board
	CheckStatus [piece.ColorN]bool
	PinnedMask  bitboard.Board // pins affecting Turn
	CheckMask   bitboard.Board // checker mask affecting Turn

	Clocks        [piece.ColorN]int64
	TurnStartedAt int64

	LastMove *MoveRecord

	Scores            [piece.ColorN]int
	CapturedPieces    [piece.ColorN][]piece.Piece
	EliminatedPlayers []EliminatedEntry

	TeamMode        bool
	TeamAssignments [piece.ColorN]int

	Version uint64
	Hash    uint64
}

// EliminatedEntry records why and in what order a color left the game.
type EliminatedEntry struct {
	Color  piece.Color
	Reason string
}

// Elimination reasons (spec.md §4.4 step 9, §6.1).
const (
	ReasonCheckmate   = "checkmate"
	ReasonStalemate   = "stalemate"
	ReasonResignation = "resignation"
	ReasonTimeout     = "timeout"
)

// NewEmpty returns a Position with no pieces, Red to move, default
// (all rights held) castling state, and derived fields all zero
// except CheckMask, which starts as every playable square; it is
// meant to be populated by Initial or a test fixture before use.
func NewEmpty() *Position {
	pos := &Position{}
	for sq := 0; sq < square.N; sq++ {
		pos.Mailbox[sq] = piece.None
	}
	pos.CheckMask = attacks.Playable
	return pos
}

// Clone deep-copies a Position, including the slice fields that a
// naive struct copy would alias.
func (pos *Position) Clone() *Position {
	cp := *pos
	if pos.EnPassant != nil {
		cp.EnPassant = append([]EnPassantTarget(nil), pos.EnPassant...)
	}
	for c := range pos.CapturedPieces {
		if pos.CapturedPieces[c] != nil {
			cp.CapturedPieces[c] = append([]piece.Piece(nil), pos.CapturedPieces[c]...)
		}
	}
	if pos.EliminatedPlayers != nil {
		cp.EliminatedPlayers = append([]EliminatedEntry(nil), pos.EliminatedPlayers...)
	}
	if pos.LastMove != nil {
		lm := *pos.LastMove
		cp.LastMove = &lm
	}
	return &cp
}

// PieceAt returns the piece on sq, or piece.None.
func (pos *Position) PieceAt(sq square.Square) piece.Piece {
	return pos.Mailbox[sq]
}

// Place puts p on sq, for callers building a custom position from
// NewEmpty (e.g. test setup for a specific scenario rather than the
// standard starting layout). Callers are responsible for calling
// RecomputeDerived and RecomputeHash once every piece is placed.
func (pos *Position) Place(sq square.Square, p piece.Piece) {
	pos.place(sq, p)
}

// place puts p on sq, updating every aggregate and the hash. sq must
// currently be empty.
func (pos *Position) place(sq square.Square, p piece.Piece) {
	c, t := p.Color(), p.Type()
	pos.PieceBB[c][t].Set(sq)
	pos.ColorBB[c].Set(sq)
	pos.Occupied.Set(sq)
	pos.Mailbox[sq] = p
	pos.Hash ^= zobrist.PieceSquare[c][t][sq]
}

// remove takes the piece off sq, which must be occupied.
func (pos *Position) remove(sq square.Square) piece.Piece {
	p := pos.Mailbox[sq]
	c, t := p.Color(), p.Type()
	pos.PieceBB[c][t].Unset(sq)
	pos.ColorBB[c].Unset(sq)
	pos.Occupied.Unset(sq)
	pos.Mailbox[sq] = piece.None
	pos.Hash ^= zobrist.PieceSquare[c][t][sq]
	return p
}

// move relocates the piece on from to to, which must be empty.
func (pos *Position) move(from, to square.Square) piece.Piece {
	p := pos.remove(from)
	pos.place(to, p)
	return p
}

// KingSquare returns the square of color c's king, or square.None if
// c has no king (should not happen for a non-eliminated color).
func (pos *Position) KingSquare(c piece.Color) square.Square {
	return pos.PieceBB[c][piece.King].FirstOne()
}

// ActiveColors returns every color still in the game, in turn order.
func (pos *Position) ActiveColors() []piece.Color {
	out := make([]piece.Color, 0, piece.ColorN)
	for _, c := range piece.Colors {
		if !pos.Eliminated[c] {
			out = append(out, c)
		}
	}
	return out
}

// NextActive returns the next color to move after c, skipping
// eliminated colors (spec.md §9: "always use next_active_player").
// Returns c itself if every other color is eliminated.
func (pos *Position) NextActive(c piece.Color) piece.Color {
	n := c.Next()
	for i := 0; i < piece.ColorN; i++ {
		if !pos.Eliminated[n] {
			return n
		}
		n = n.Next()
	}
	return c
}
