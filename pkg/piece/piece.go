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

// Package piece defines the four colors and six piece types of the
// four-player variant, and the packed (color, type) piece code.
package piece

// Color identifies one of the four seats at the board.
type Color uint8

const (
	Red Color = iota
	Blue
	Yellow
	Green

	ColorN    = 4
	ColorNone = Color(0xF)
)

// Next returns the color seated immediately after c in turn order,
// ignoring elimination; callers needing to skip eliminated colors use
// board.Position's NextActive instead.
func (c Color) Next() Color {
	return (c + 1) % ColorN
}

// Team returns 0 or 1, the two-team partition used by team mode
// (Red/Yellow vs Blue/Green, the two opposite-seat pairs).
func (c Color) Team() int {
	return int(c) % 2
}

// Opposite returns the color facing the opposite direction across
// the board (Red<->Yellow, Blue<->Green). Used to mirror a pawn's
// diagonal-capture deltas when computing which squares attack a given
// square, rather than which squares a pawn on it attacks.
func (c Color) Opposite() Color {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	case Blue:
		return Green
	case Green:
		return Blue
	default:
		return c
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "r"
	case Blue:
		return "b"
	case Yellow:
		return "y"
	case Green:
		return "g"
	default:
		return "?"
	}
}

// Type identifies one of the six piece kinds.
type Type uint8

const (
	Pawn Type = iota
	Knight
	Bishop
	Rook
	Queen
	King

	TypeN    = 6
	TypeNone = Type(0x7)
)

func (t Type) String() string {
	switch t {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Value is the nominal material value used by scoring (spec §6.4) and
// as a starting point for the evaluator's material term (spec §4.5).
// Bishop and Rook share a value by design (spec §6.4: B=R=5).
func (t Type) Value() int {
	switch t {
	case Pawn:
		return 1
	case Knight:
		return 3
	case Bishop, Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// Piece packs a Color and a Type into a single byte, color in the
// high bits and type in the low bits, mirroring the teacher's
// color<<3|type layout generalized from one to two color bits.
type Piece uint8

// None is a sentinel outside the valid (color, type) range: the
// largest legal packed value is Green<<3|King == 3<<3|5 == 29, so 0xFF
// is always free.
const None Piece = 0xFF

func New(c Color, t Type) Piece {
	return Piece(c)<<3 | Piece(t)
}

func (p Piece) Color() Color { return Color(p >> 3) }
func (p Piece) Type() Type   { return Type(p & 0x7) }
func (p Piece) IsNone() bool { return p == None }

func (p Piece) Is(t Type) bool       { return p != None && p.Type() == t }
func (p Piece) IsColor(c Color) bool { return p != None && p.Color() == c }

func (p Piece) String() string {
	if p == None {
		return "."
	}
	return p.Color().String() + p.Type().String()
}

// NewFromString parses the two-character form produced by String,
// e.g. "rp" for a red pawn.
func NewFromString(s string) (Piece, bool) {
	if len(s) != 2 {
		return None, false
	}
	var c Color
	switch s[0] {
	case 'r':
		c = Red
	case 'b':
		c = Blue
	case 'y':
		c = Yellow
	case 'g':
		c = Green
	default:
		return None, false
	}
	var t Type
	switch s[1] {
	case 'p':
		t = Pawn
	case 'n':
		t = Knight
	case 'b':
		t = Bishop
	case 'r':
		t = Rook
	case 'q':
		t = Queen
	case 'k':
		t = King
	default:
		return None, false
	}
	return New(c, t), true
}

// Colors is the fixed turn-order sequence used whenever code needs to
// range over all four seats regardless of elimination.
var Colors = [ColorN]Color{Red, Blue, Yellow, Green}

// Types is the fixed enumeration of the six piece kinds.
var Types = [TypeN]Type{Pawn, Knight, Bishop, Rook, Queen, King}
