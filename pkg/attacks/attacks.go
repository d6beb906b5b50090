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

// Package attacks precomputes the ray, knight, king, and pawn attack
// tables of spec.md §4.1, and implements the blocker-scan sliding
// attack routine of §4.1's algorithm. Everything is built once at
// init() by walking the 14x14 grid geometrically, mirroring how the
// teacher's generators build RAY/Knight/King tables, folded into
// plain init() code since the table here is small enough not to need
// a separate code-generation step (see DESIGN.md).
package attacks

import (
	"github.com/godwin-jg/quadrachess/pkg/bitboard"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// Direction identifies one of the 8 ray directions from a square.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest

	DirectionN = 8
)

var deltas = [DirectionN][2]int{
	North:     {-1, 0},
	South:     {1, 0},
	East:      {0, 1},
	West:      {0, -1},
	NorthEast: {-1, 1},
	NorthWest: {-1, -1},
	SouthEast: {1, 1},
	SouthWest: {1, -1},
}

// increasing reports whether stepping in direction d increases the
// linear square index (row*14+col); such a ray's blocker nearest the
// source is its lowest-index bit, decreasing rays use the highest.
func increasing(d Direction) bool {
	switch d {
	case South, East, SouthEast, SouthWest:
		return true
	default:
		return false
	}
}

var (
	// Ray[sq][dir] is the full ray of squares from sq in direction
	// dir, stopping at the board edge or a corner hole, excluding sq
	// itself.
	Ray [square.N][DirectionN]bitboard.Board

	// Knight[sq] and King[sq] are the non-sliding jump tables.
	Knight [square.N]bitboard.Board
	King   [square.N]bitboard.Board

	// Pawn[color][sq] is the set of squares a pawn of that color
	// attacks (diagonal-forward captures) from sq; it does not
	// include the straight-ahead push squares.
	Pawn [piece.ColorN][square.N]bitboard.Board

	// Playable is the set of all 160 non-hole squares.
	Playable bitboard.Board
)

var knightDeltas = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// pawnForward is the (drow, dcol) a pawn of each color advances by;
// used to derive its two diagonal-forward capture deltas.
var pawnForward = [piece.ColorN][2]int{
	piece.Red:    {-1, 0},
	piece.Yellow: {1, 0},
	piece.Blue:   {0, 1},
	piece.Green:  {0, -1},
}

func init() {
	for row := 0; row < square.Ranks; row++ {
		for col := 0; col < square.Files; col++ {
			if !square.PlayableRC(row, col) {
				continue
			}
			sq := square.New(row, col)
			Playable.Set(sq)
		}
	}

	for row := 0; row < square.Ranks; row++ {
		for col := 0; col < square.Files; col++ {
			if !square.PlayableRC(row, col) {
				continue
			}
			sq := square.New(row, col)

			for d := Direction(0); d < DirectionN; d++ {
				dr, dc := deltas[d][0], deltas[d][1]
				r, c := row+dr, col+dc
				var ray bitboard.Board
				for square.PlayableRC(r, c) {
					ray.Set(square.New(r, c))
					r += dr
					c += dc
				}
				Ray[sq][d] = ray
			}

			var knight bitboard.Board
			for _, delta := range knightDeltas {
				r, c := row+delta[0], col+delta[1]
				if square.PlayableRC(r, c) {
					knight.Set(square.New(r, c))
				}
			}
			Knight[sq] = knight

			var king bitboard.Board
			for _, delta := range deltas {
				r, c := row+delta[0], col+delta[1]
				if square.PlayableRC(r, c) {
					king.Set(square.New(r, c))
				}
			}
			King[sq] = king

			for _, c := range piece.Colors {
				fr, fc := pawnForward[c][0], pawnForward[c][1]
				var pawn bitboard.Board
				for _, side := range [2]int{-1, 1} {
					var r, cc int
					if fr != 0 {
						r, cc = row+fr, col+side
					} else {
						r, cc = row+side, col+fc
					}
					if square.PlayableRC(r, cc) {
						pawn.Set(square.New(r, cc))
					}
				}
				Pawn[c][sq] = pawn
			}
		}
	}
}

// Sliding computes the attack set along a single direction from sq
// given the current occupancy, per spec.md §4.1's blocker-scan
// algorithm: take the full ray, intersect with occupancy to find
// blockers, and if any exist, subtract the ray continuing beyond the
// nearest one.
func Sliding(sq square.Square, d Direction, occ bitboard.Board) bitboard.Board {
	ray := Ray[sq][d]
	blockers := ray.Intersect(occ)
	if blockers.Empty() {
		return ray
	}
	var blocker square.Square
	if increasing(d) {
		blocker = blockers.FirstOne()
	} else {
		blocker = blockers.LastOne()
	}
	return ray.AndNot(Ray[blocker][d])
}

// Bishop is the union of the four diagonal sliding directions.
func Bishop(sq square.Square, occ bitboard.Board) bitboard.Board {
	return Sliding(sq, NorthEast, occ).
		Union(Sliding(sq, NorthWest, occ)).
		Union(Sliding(sq, SouthEast, occ)).
		Union(Sliding(sq, SouthWest, occ))
}

// Rook is the union of the four orthogonal sliding directions.
func Rook(sq square.Square, occ bitboard.Board) bitboard.Board {
	return Sliding(sq, North, occ).
		Union(Sliding(sq, South, occ)).
		Union(Sliding(sq, East, occ)).
		Union(Sliding(sq, West, occ))
}

// Queen is the union of Bishop and Rook attacks.
func Queen(sq square.Square, occ bitboard.Board) bitboard.Board {
	return Bishop(sq, occ).Union(Rook(sq, occ))
}

// Of returns the attack set of a piece type from sq given occupancy;
// color only matters for pawns. Kings and knights ignore occ.
func Of(t piece.Type, c piece.Color, sq square.Square, occ bitboard.Board) bitboard.Board {
	switch t {
	case piece.Pawn:
		return Pawn[c][sq]
	case piece.Knight:
		return Knight[sq]
	case piece.Bishop:
		return Bishop(sq, occ)
	case piece.Rook:
		return Rook(sq, occ)
	case piece.Queen:
		return Queen(sq, occ)
	case piece.King:
		return King[sq]
	default:
		return bitboard.Board{}
	}
}

// Between returns the squares strictly between a and b if they share
// a ray (straight line or diagonal), excluding both endpoints; used
// by the checker mask (spec.md §4.2) to find blocking squares. Returns
// the empty board if a and b do not share a ray.
func Between(a, b square.Square) bitboard.Board {
	for d := Direction(0); d < DirectionN; d++ {
		ray := Ray[a][d]
		if !ray.IsSet(b) {
			continue
		}
		// ray from b in the opposite direction, intersected with ray
		// from a, gives exactly the squares strictly between them.
		opposite := opposite(d)
		return ray.Intersect(Ray[b][opposite])
	}
	return bitboard.Board{}
}

func opposite(d Direction) Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	default:
		return d
	}
}

// IsDiagonal and IsOrthogonal classify a direction, used when
// checking whether a slider of a given type can attack along the
// direction a pinned piece sits on (spec.md §4.2).
func IsDiagonal(d Direction) bool {
	switch d {
	case NorthEast, NorthWest, SouthEast, SouthWest:
		return true
	default:
		return false
	}
}

func IsOrthogonal(d Direction) bool { return !IsDiagonal(d) }
