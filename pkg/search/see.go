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
	"github.com/godwin-jg/quadrachess/pkg/attacks"
	"github.com/godwin-jg/quadrachess/pkg/bitboard"
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/eval"
	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// seeValue mirrors the teacher's pkg/search/eval/see.go table: its
// own valuation, distinct from eval.PieceValue, so a hung king is
// worth enough that the exchange loop below always prefers resolving
// with any other attacker first.
var seeValue = [piece.TypeN]eval.Eval{
	piece.Pawn:   100,
	piece.Knight: 400,
	piece.Bishop: 400,
	piece.Rook:   600,
	piece.Queen:  1000,
	piece.King:   30000,
}

// SEE performs a static exchange evaluation of the capture/promotion
// sequence starting with m, reporting whether it beats threshold from
// the moving piece's side's point of view. It is grounded on the
// teacher's pkg/search/eval/see.go, generalized from a single
// opposing color to a coalition of every other active color: once
// the mover's color captures, any other active color's cheapest
// attacker may recapture (mirroring the paranoid framing the rest of
// the searcher uses, since the colors in the coalition don't actually
// coordinate their real moves but a conservative estimate treats them
// as if they did). Unlike the teacher's incremental x-ray reveal per
// direction, attackers are recomputed from scratch after each capture
// for simplicity, since SEE's exchange loop is already the one part
// of this search generalized well beyond the teacher's 2-color shape.
func SEE(pos *board.Position, m move.Move, threshold eval.Eval) bool {
	source, target := m.Source(), m.Target()
	moverColor := m.FromPiece().Color()
	attacker := m.FromPiece().Type()

	var victim piece.Type
	if pos.IsEnPassant(m) {
		victim = piece.Pawn
	} else {
		victim = pos.PieceAt(target).Type()
	}

	balance := seeValue[victim]
	if balance < threshold {
		return false
	}
	balance -= seeValue[attacker]
	if balance >= threshold {
		return true
	}

	coalition := make([]piece.Color, 0, piece.ColorN-1)
	for _, c := range pos.ActiveColors() {
		if c != moverColor {
			coalition = append(coalition, c)
		}
	}
	mover := [1]piece.Color{moverColor}

	occupied := pos.Occupied
	occupied.Unset(source)

	attackersBB := attackersTo(pos, target, occupied)
	isMoverTurn := false // the coalition recaptures first

	for {
		group := coalition
		if isMoverTurn {
			group = mover[:]
		}

		sq, t, ok := leastValuableAttacker(pos, attackersBB.Intersect(occupied), group)
		if !ok {
			break
		}

		if t == piece.King {
			var other []piece.Color
			if isMoverTurn {
				other = coalition
			} else {
				other = mover[:]
			}
			if _, _, stillAttacked := leastValuableAttacker(pos, attackersBB.Intersect(occupied), other); stillAttacked {
				break // king can't capture into a still-defended square
			}
		}

		occupied.Unset(sq)
		isMoverTurn = !isMoverTurn
		balance = -balance - seeValue[t]
		attackersBB = attackersTo(pos, target, occupied)

		if balance >= threshold {
			break
		}
	}

	// isMoverTurn now names whichever side's turn it was when the
	// exchange stopped; if that side is not the mover's, the mover's
	// side of the sequence held up.
	return !isMoverTurn
}

// leastValuableAttacker finds the cheapest piece type with a square
// in attackers belonging to one of colors, for the exchange loop
// above.
func leastValuableAttacker(pos *board.Position, attackers bitboard.Board, colors []piece.Color) (square.Square, piece.Type, bool) {
	for _, t := range piece.Types {
		for _, c := range colors {
			bb := pos.PieceBB[c][t].Intersect(attackers)
			if !bb.Empty() {
				return bb.FirstOne(), t, true
			}
		}
	}
	return square.None, 0, false
}

// attackersTo returns every active piece attacking sq given occupancy
// occ, generalizing the teacher's 2-color attackersTo in
// pkg/search/eval/see.go to loop over all four colors for pawns
// (whose attack direction is color-specific on this board).
func attackersTo(pos *board.Position, sq square.Square, occ bitboard.Board) bitboard.Board {
	diagonal := unionType(pos, piece.Bishop).Union(unionType(pos, piece.Queen))
	straight := unionType(pos, piece.Rook).Union(unionType(pos, piece.Queen))

	var out bitboard.Board
	out = out.Union(attacks.King[sq].Intersect(unionType(pos, piece.King)))
	out = out.Union(attacks.Knight[sq].Intersect(unionType(pos, piece.Knight)))
	out = out.Union(attacks.Bishop(sq, occ).Intersect(diagonal))
	out = out.Union(attacks.Rook(sq, occ).Intersect(straight))

	for _, c := range pos.ActiveColors() {
		out = out.Union(attacks.Pawn[c.Opposite()][sq].Intersect(pos.PieceBB[c][piece.Pawn]))
	}

	return out.Intersect(occ)
}

// unionType unions t across every active color's bitboard.
func unionType(pos *board.Position, t piece.Type) bitboard.Board {
	var out bitboard.Board
	for _, c := range pos.ActiveColors() {
		out = out.Union(pos.PieceBB[c][t])
	}
	return out
}
