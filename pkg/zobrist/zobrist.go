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

// Package zobrist precomputes the random keys used to incrementally
// hash a position (spec.md §4.6.6): one key per (square, piece) pair,
// per side to move, per castling-rights flag, per eliminated-player
// flag, and per en-passant target square.
package zobrist

import (
	"github.com/godwin-jg/quadrachess/internal/util"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// PieceSquare[color][type][square] is the key toggled whenever a
// piece of that color and type is added to or removed from a square.
var PieceSquare [piece.ColorN][piece.TypeN][square.N]uint64

// Turn[color] is XORed into the hash for whichever color is to move.
var Turn [piece.ColorN]uint64

// Castling rights: spec.md §3.4 tracks, per color, one flag for the
// king plus one for each of the two rooks, 12 flags total.
type CastlingRight uint8

const (
	KingMoved CastlingRight = iota
	KingsideRookMoved
	QueensideRookMoved

	CastlingRightN = 3
)

var Castling [piece.ColorN][CastlingRightN]uint64

// Eliminated[color] is XORed in while that color is eliminated.
var Eliminated [piece.ColorN]uint64

// EnPassant[square] is XORed in for every currently-live en-passant
// target square (spec.md §3.4's enPassantTargets is a set of skipped
// squares; at most one per non-eliminated color can be live at once).
var EnPassant [square.N]uint64

// seed is fixed (not time-derived) so that hashes are reproducible
// across runs, mirroring the teacher's own choice of a seeded xorshift
// PRNG over math/rand's global source.
const seed = 0x9E3779B97F4A7C15

func init() {
	var rng util.PRNG
	rng.Seed(seed)

	for c := 0; c < piece.ColorN; c++ {
		for t := 0; t < piece.TypeN; t++ {
			for sq := 0; sq < square.N; sq++ {
				PieceSquare[c][t][sq] = rng.Uint64()
			}
		}
	}
	for c := 0; c < piece.ColorN; c++ {
		Turn[c] = rng.Uint64()
		Eliminated[c] = rng.Uint64()
		for r := 0; r < CastlingRightN; r++ {
			Castling[c][r] = rng.Uint64()
		}
	}
	for sq := 0; sq < square.N; sq++ {
		EnPassant[sq] = rng.Uint64()
	}
}
