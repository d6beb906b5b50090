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

// Package move implements the packed Move representation of
// spec.md §3.5. Like the teacher's pkg/board/move/move.go, most tag
// bits (en passant, double push) are derived from source/target/piece
// rather than stored directly, keeping the encoding small; board
// methods resolve them with board context. Castling is the one
// exception: it is a stored bit, since (unlike the teacher's 2-square
// castle) Yellow/Green's 1-square castling king move cannot be told
// apart from an ordinary king step by distance alone.
package move

import (
	"fmt"

	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// Move packs source square (8 bits), target square (8 bits), moving
// piece (5 bits), captured piece or piece.None (5 bits), a capture
// flag, and an optional promotion type into a uint32.
type Move uint32

const (
	sourceShift    = 0
	targetShift    = 8
	fromPieceShift = 16
	toPieceShift   = 21
	captureBit     = 1 << 26
	promotionShift = 27
	castlingBit    = 1 << 30

	squareMask = 0xFF
	pieceMask  = 0x1F
)

// Null is the zero Move, used as a "no move" sentinel (e.g. an empty
// TT entry or a search that found nothing at depth 1).
const Null Move = 0

// New builds a Move. toPiece should be piece.None for non-captures.
func New(source, target square.Square, fromPiece, toPiece piece.Piece) Move {
	m := Move(source)<<sourceShift |
		Move(target)<<targetShift |
		Move(fromPiece)<<fromPieceShift |
		Move(toPiece&pieceMask)<<toPieceShift
	if toPiece != piece.None {
		m |= captureBit
	}
	return m
}

func (m Move) Source() square.Square {
	return square.Square((m >> sourceShift) & squareMask)
}

func (m Move) Target() square.Square {
	return square.Square((m >> targetShift) & squareMask)
}

func (m Move) FromPiece() piece.Piece {
	return piece.Piece((m >> fromPieceShift) & pieceMask)
}

// ToPiece is the captured piece, or piece.None if the move is not a
// capture (the raw bits always encode one, but IsCapture is the bit
// that says whether it is meaningful, since a non-capture's target
// square piece code would otherwise alias a real piece).
func (m Move) ToPiece() piece.Piece {
	if !m.IsCapture() {
		return piece.None
	}
	return piece.Piece((m >> toPieceShift) & pieceMask)
}

func (m Move) IsCapture() bool { return m&captureBit != 0 }

// SetPromotion returns m with the promotion-to type recorded.
func (m Move) SetPromotion(t piece.Type) Move {
	return (m &^ (Move(0x7) << promotionShift)) | (Move(t+1) << promotionShift)
}

// Promotion returns the promotion-to type and true if m is a
// promotion.
func (m Move) Promotion() (piece.Type, bool) {
	v := (m >> promotionShift) & 0x7
	if v == 0 {
		return 0, false
	}
	return piece.Type(v - 1), true
}

func (m Move) IsPromotion() bool {
	_, ok := m.Promotion()
	return ok
}

// IsQuiet reports whether the move is neither a capture nor a
// promotion; quiescence search only considers non-quiet moves.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsDoublePush reports whether m moves a pawn two ranks/files in its
// forward direction, used to record a fresh en-passant target.
func (m Move) IsDoublePush() bool {
	if m.FromPiece().Type() != piece.Pawn {
		return false
	}
	return square.Manhattan(m.Source(), m.Target()) == 2 &&
		(m.Source().Row() == m.Target().Row() || m.Source().Col() == m.Target().Col())
}

// SetCastling marks m as a castling king move. This is a stored flag
// rather than one derived from king-move distance, since Yellow and
// Green's kingside castle moves their king only one square (spec.md
// §6.3's geometry table is asymmetric across colors) and so would be
// indistinguishable from an ordinary one-square king move by distance
// alone; only the move generator, which knows it built a castle, can
// set this unambiguously.
func (m Move) SetCastling() Move { return m | castlingBit }

// IsCastling reports whether m is a castling king move.
func (m Move) IsCastling() bool { return m&castlingBit != 0 }

func (m Move) String() string {
	s := m.Source().String() + m.Target().String()
	if t, ok := m.Promotion(); ok {
		s += t.String()
	}
	return s
}

func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s %s->%s)", m.FromPiece(), m.Source(), m.Target())
}
