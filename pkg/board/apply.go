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

package board

import (
	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/move/castling"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
	"github.com/godwin-jg/quadrachess/pkg/zobrist"
)

// IsEnPassant reports whether m, as generated against pos, is an
// en-passant capture: a pawn capture whose target square is empty
// (the skipped square), the captured piece instead sitting beside it.
func (pos *Position) IsEnPassant(m move.Move) bool {
	return m.IsCapture() && m.FromPiece().Type() == piece.Pawn && pos.PieceAt(m.Target()) == piece.None
}

// Apply performs the low-level board mutation of spec.md §4.4 steps
// 1-5: remove the captured piece (handling en passant), relocate the
// mover (handling promotion), move the castling rook, update
// hasMoved flags, and record/expire en-passant targets. It mutates
// pos in place; callers wanting copy-on-write semantics must Clone
// first, matching the teacher's MakeMove/UnmakeMove pattern adapted
// to return a new Position per spec.md §6.1 rather than mutate and
// later unmake.
//
// Turn advancement, scoring, elimination, and clocks (spec.md §4.4
// steps 6-11) are orchestrated by the quadchess state machine, which
// calls Apply as its first step.
func (pos *Position) Apply(m move.Move) MoveRecord {
	from, to := m.Source(), m.Target()
	mover := pos.PieceAt(from)
	color := mover.Color()

	isCastling := m.IsCastling()
	isEnPassant := pos.IsEnPassant(m)
	promoType, isPromotion := m.Promotion()

	var captured piece.Piece = piece.None
	var capturedSq square.Square = square.None

	switch {
	case isEnPassant:
		ep, ok := pos.findEnPassant(to)
		if ok {
			capturedSq = epCapturedSquare(ep)
			captured = pos.remove(capturedSq)
		}
		pos.EnPassant = removeEPTarget(pos.EnPassant, to)
	case m.IsCapture():
		capturedSq = to
		captured = pos.remove(to)
	}

	pos.move(from, to)

	if isPromotion {
		pos.remove(to)
		pos.place(to, piece.New(color, promoType))
	}

	if isCastling {
		geo := castling.Colors[color]
		side := castling.Kingside
		if to == geo.KingTo[castling.Queenside] {
			side = castling.Queenside
		}
		rookInfo := geo.Rook[side]
		pos.move(rookInfo.From, rookInfo.To)
		pos.KingsideRookMoved[color] = true
		pos.QueensideRookMoved[color] = true
	}

	switch mover.Type() {
	case piece.King:
		pos.KingMoved[color] = true
	case piece.Rook:
		geo := castling.Colors[color]
		if from == geo.Rook[castling.Kingside].From {
			pos.KingsideRookMoved[color] = true
		}
		if from == geo.Rook[castling.Queenside].From {
			pos.QueensideRookMoved[color] = true
		}
	}

	if captured.Type() == piece.Rook {
		cc := captured.Color()
		geo := castling.Colors[cc]
		if capturedSq == geo.Rook[castling.Kingside].From {
			pos.KingsideRookMoved[cc] = true
		}
		if capturedSq == geo.Rook[castling.Queenside].From {
			pos.QueensideRookMoved[cc] = true
		}
	}

	if m.IsDoublePush() {
		geo := pawnGeo[color]
		skipped := square.New(from.Row()+geo.Forward[0], from.Col()+geo.Forward[1])
		pos.EnPassant = append(pos.EnPassant, EnPassantTarget{Square: skipped, Creator: color})
	}

	record := MoveRecord{
		From: from, To: to,
		Piece: mover, Captured: captured,
		Color: color,
		IsCastling: isCastling, IsEnPassant: isEnPassant, IsPromotion: isPromotion,
	}
	pos.LastMove = &record
	return record
}

// ExpireEnPassants drops any en-passant target whose creator is now
// (after the turn advance) to move again, i.e. a full cycle has
// passed without anyone capturing it (spec.md §4.4 step 5, §9).
func (pos *Position) ExpireEnPassants(newTurn piece.Color) {
	kept := pos.EnPassant[:0]
	for _, ep := range pos.EnPassant {
		if ep.Creator != newTurn {
			kept = append(kept, ep)
		}
	}
	pos.EnPassant = kept
}

func (pos *Position) findEnPassant(sq square.Square) (EnPassantTarget, bool) {
	for _, ep := range pos.EnPassant {
		if ep.Square == sq {
			return ep, true
		}
	}
	return EnPassantTarget{}, false
}

func removeEPTarget(targets []EnPassantTarget, sq square.Square) []EnPassantTarget {
	kept := targets[:0]
	for _, ep := range targets {
		if ep.Square != sq {
			kept = append(kept, ep)
		}
	}
	return kept
}

// RecomputeHash fully recomputes the Zobrist hash from scratch; used
// as a correctness check against the incrementally maintained Hash
// field (spec.md §4.6.6 permits either strategy). Apply maintains
// Hash incrementally via place/remove; callers needing to fold in
// turn/castling/en-passant/eliminated components (which place/remove
// does not touch) should call this after mutation instead, as the
// search/quadchess layers do.
func (pos *Position) RecomputeHash() uint64 {
	var h uint64
	for _, c := range piece.Colors {
		for _, t := range piece.Types {
			bb := pos.PieceBB[c][t]
			for sq, rest := bb.Pop(); sq != square.None; sq, rest = rest.Pop() {
				h ^= zobrist.PieceSquare[c][t][sq]
			}
		}
		if pos.Eliminated[c] {
			h ^= zobrist.Eliminated[c]
		}
		if pos.KingMoved[c] {
			h ^= zobrist.Castling[c][zobrist.KingMoved]
		}
		if pos.KingsideRookMoved[c] {
			h ^= zobrist.Castling[c][zobrist.KingsideRookMoved]
		}
		if pos.QueensideRookMoved[c] {
			h ^= zobrist.Castling[c][zobrist.QueensideRookMoved]
		}
	}
	h ^= zobrist.Turn[pos.Turn]
	for _, ep := range pos.EnPassant {
		h ^= zobrist.EnPassant[ep.Square]
	}
	return h
}
