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
	"github.com/godwin-jg/quadrachess/pkg/attacks"
	"github.com/godwin-jg/quadrachess/pkg/bitboard"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// attacksBy returns every square color c attacks, given occupancy
// occ. Passing an occupancy with a king bit removed lets callers
// recompute the "X-ray" attack set used to filter king moves (spec.md
// §4.2/§9), instead of reusing the cached AttackMaps entry.
func (pos *Position) attacksBy(c piece.Color, occ bitboard.Board) bitboard.Board {
	var out bitboard.Board
	for _, t := range piece.Types {
		bb := pos.PieceBB[c][t]
		for sq, rest := bb.Pop(); sq != square.None; sq, rest = rest.Pop() {
			out = out.Union(attacks.Of(t, c, sq, occ))
		}
	}
	return out
}

// enemyAttacks unions the attack maps of every non-eliminated color
// other than c, under occupancy occ.
func (pos *Position) enemyAttacks(c piece.Color, occ bitboard.Board) bitboard.Board {
	var out bitboard.Board
	for _, d := range piece.Colors {
		if d == c || pos.Eliminated[d] {
			continue
		}
		out = out.Union(pos.attacksBy(d, occ))
	}
	return out
}

// RecomputeDerived recomputes AttackMaps, CheckStatus for every
// color, and PinnedMask/CheckMask for the side to move, restoring the
// invariants of spec.md §3.4 after a mutation. Must be called once
// after every committed change to PieceBB/Occupied/Turn/Eliminated.
func (pos *Position) RecomputeDerived() {
	for _, c := range piece.Colors {
		if pos.Eliminated[c] {
			pos.AttackMaps[c] = bitboard.Board{}
			pos.CheckStatus[c] = false
			continue
		}
		pos.AttackMaps[c] = pos.attacksBy(c, pos.Occupied)
	}
	for _, c := range piece.Colors {
		if pos.Eliminated[c] {
			continue
		}
		kingBB := pos.PieceBB[c][piece.King]
		var attackers bitboard.Board
		for _, d := range piece.Colors {
			if d == c || pos.Eliminated[d] {
				continue
			}
			attackers = attackers.Union(pos.AttackMaps[d])
		}
		pos.CheckStatus[c] = !kingBB.Intersect(attackers).Empty()
	}

	pos.PinnedMask = pos.computePinnedMask(pos.Turn)
	pos.CheckMask = pos.computeCheckMask(pos.Turn)
}

// pinLine describes one pinned piece and the ray it is confined to.
type pinLine struct {
	Square square.Square
	Line   bitboard.Board
}

// computePins implements spec.md §4.2's pin algorithm: for each of
// the 8 directions from the king, find the first blocker; if it is
// friendly, look past it for a second blocker that is an enemy slider
// able to attack along that direction, in which case the first
// blocker is pinned to the ray between (and including) the king's
// side and the pinner.
func (pos *Position) computePins(c piece.Color) []pinLine {
	kingSq := pos.KingSquare(c)
	if kingSq == square.None {
		return nil
	}
	var pins []pinLine
	for d := attacks.Direction(0); d < attacks.DirectionN; d++ {
		first, ok := firstBlocker(kingSq, d, pos.Occupied)
		if !ok {
			continue
		}
		p := pos.PieceAt(first)
		if p.Color() != c {
			continue // enemy piece directly on the ray: a checker, not a pin
		}
		second, ok := firstBlocker(first, d, pos.Occupied)
		if !ok {
			continue
		}
		q := pos.PieceAt(second)
		if q.Color() == c || pos.Eliminated[q.Color()] {
			continue
		}
		t := q.Type()
		slides := (attacks.IsDiagonal(d) && (t == piece.Bishop || t == piece.Queen)) ||
			(attacks.IsOrthogonal(d) && (t == piece.Rook || t == piece.Queen))
		if slides {
			pins = append(pins, pinLine{Square: first, Line: attacks.Ray[kingSq][d]})
		}
	}
	return pins
}

func (pos *Position) computePinnedMask(c piece.Color) bitboard.Board {
	var mask bitboard.Board
	for _, p := range pos.computePins(c) {
		mask.Set(p.Square)
	}
	return mask
}

// computeCheckMask implements spec.md §4.2's checker mask: the set of
// checkers plus, for a single sliding checker, the ray between king
// and checker (inclusive of the checker). Two or more checkers return
// the empty board (only king moves legal); zero checkers return the
// all-playable-squares sentinel.
func (pos *Position) computeCheckMask(c piece.Color) bitboard.Board {
	kingSq := pos.KingSquare(c)
	if kingSq == square.None {
		return attacks.Playable
	}
	var checkers bitboard.Board

	for _, x := range piece.Colors {
		if x == c || pos.Eliminated[x] {
			continue
		}
		pawnFrom := attacks.Pawn[x.Opposite()][kingSq]
		checkers = checkers.Union(pos.PieceBB[x][piece.Pawn].Intersect(pawnFrom))
		checkers = checkers.Union(pos.PieceBB[x][piece.Knight].Intersect(attacks.Knight[kingSq]))
		diagSliders := pos.PieceBB[x][piece.Bishop].Union(pos.PieceBB[x][piece.Queen])
		checkers = checkers.Union(diagSliders.Intersect(attacks.Bishop(kingSq, pos.Occupied)))
		orthoSliders := pos.PieceBB[x][piece.Rook].Union(pos.PieceBB[x][piece.Queen])
		checkers = checkers.Union(orthoSliders.Intersect(attacks.Rook(kingSq, pos.Occupied)))
	}

	switch checkers.Count() {
	case 0:
		return attacks.Playable
	case 1:
		checkerSq := checkers.FirstOne()
		checkerPiece := pos.PieceAt(checkerSq)
		t := checkerPiece.Type()
		if t == piece.Bishop || t == piece.Rook || t == piece.Queen {
			return checkers.Union(attacks.Between(kingSq, checkerSq))
		}
		return checkers
	default:
		return bitboard.Board{}
	}
}

// xrayKingAttacks recomputes enemy attacks against c's escape squares
// with c's king removed from occupancy, per spec.md §4.2/§9: a slider
// whose attack is blocked only by the king must still be treated as
// attacking the square behind it.
func (pos *Position) xrayKingAttacks(c piece.Color) bitboard.Board {
	occWithoutKing := pos.Occupied.AndNot(pos.PieceBB[c][piece.King])
	return pos.enemyAttacks(c, occWithoutKing)
}

// firstBlocker returns the nearest occupied square to sq along
// direction d, or ok=false if the ray is clear.
func firstBlocker(sq square.Square, d attacks.Direction, occ bitboard.Board) (square.Square, bool) {
	ray := attacks.Ray[sq][d]
	blockers := ray.Intersect(occ)
	if blockers.Empty() {
		return square.None, false
	}
	if directionIncreases(d) {
		return blockers.FirstOne(), true
	}
	return blockers.LastOne(), true
}

func directionIncreases(d attacks.Direction) bool {
	switch d {
	case attacks.South, attacks.East, attacks.SouthEast, attacks.SouthWest:
		return true
	default:
		return false
	}
}
