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

// Package castling hard-codes the board-geometry constants of
// spec.md §6.3, the way the teacher hard-codes its Rooks table in
// pkg/board/move/castling/rooks.go, generalized from one king-target
// square per color to two (kingside and queenside) across four
// colors with two different motion axes.
package castling

import (
	"github.com/godwin-jg/quadrachess/pkg/bitboard"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// Side selects kingside or queenside castling.
type Side uint8

const (
	Kingside Side = iota
	Queenside

	SideN = 2
)

// RookInfo records a castling rook's source and destination square.
type RookInfo struct {
	From, To square.Square
}

// Geometry is one color's full castling layout.
type Geometry struct {
	KingFrom square.Square
	KingTo   [SideN]square.Square
	Rook     [SideN]RookInfo

	// Path[side] is the set of squares the king passes through,
	// inclusive of the destination and exclusive of the origin; every
	// square in Path must be empty and unattacked for the move to be
	// legal (spec.md §4.3).
	Path [SideN]bitboard.Board
}

// Colors holds one Geometry per color, indexed by piece.Color.
var Colors [piece.ColorN]Geometry

func sq(row, col int) square.Square { return square.New(row, col) }

func pathBetween(from, to square.Square) bitboard.Board {
	var b bitboard.Board
	fr, fc := from.Row(), from.Col()
	tr, tc := to.Row(), to.Col()
	dr, dc := sign(tr-fr), sign(tc-fc)
	r, c := fr+dr, fc+dc
	for {
		b.Set(square.New(r, c))
		if r == tr && c == tc {
			break
		}
		r += dr
		c += dc
	}
	return b
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func init() {
	Colors[piece.Red] = Geometry{
		KingFrom: sq(13, 7),
		KingTo:   [SideN]square.Square{sq(13, 9), sq(13, 5)},
		Rook: [SideN]RookInfo{
			{From: sq(13, 10), To: sq(13, 8)},
			{From: sq(13, 3), To: sq(13, 6)},
		},
	}
	Colors[piece.Yellow] = Geometry{
		KingFrom: sq(0, 7),
		KingTo:   [SideN]square.Square{sq(0, 8), sq(0, 4)},
		Rook: [SideN]RookInfo{
			{From: sq(0, 10), To: sq(0, 8)},
			{From: sq(0, 3), To: sq(0, 6)},
		},
	}
	Colors[piece.Blue] = Geometry{
		KingFrom: sq(7, 0),
		KingTo:   [SideN]square.Square{sq(9, 0), sq(4, 0)},
		Rook: [SideN]RookInfo{
			{From: sq(10, 0), To: sq(8, 0)},
			{From: sq(3, 0), To: sq(6, 0)},
		},
	}
	Colors[piece.Green] = Geometry{
		KingFrom: sq(7, 13),
		KingTo:   [SideN]square.Square{sq(8, 13), sq(4, 13)},
		Rook: [SideN]RookInfo{
			{From: sq(10, 13), To: sq(8, 13)},
			{From: sq(3, 13), To: sq(5, 13)},
		},
	}

	for c := range Colors {
		g := &Colors[c]
		for s := Side(0); s < SideN; s++ {
			g.Path[s] = pathBetween(g.KingFrom, g.KingTo[s])
		}
	}
}
