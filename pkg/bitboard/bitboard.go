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

// Package bitboard implements 196-bit sets of squares over the
// cross-shaped board as four 64-bit words (spec.md §9 Design Note
// "(b)"), since no native integer type holds 196 bits. Word i holds
// bits 64*i..64*i+63 of the linear square index.
package bitboard

import (
	"math/bits"

	"github.com/godwin-jg/quadrachess/pkg/square"
)

// Board is a set of squares. The zero value is the empty set.
type Board [4]uint64

func wordOf(sq square.Square) (word int, bit uint) {
	return int(sq) / 64, uint(sq) % 64
}

// Of builds a Board containing exactly the given squares.
func Of(sqs ...square.Square) Board {
	var b Board
	for _, s := range sqs {
		b.Set(s)
	}
	return b
}

func (b Board) IsSet(sq square.Square) bool {
	w, bit := wordOf(sq)
	return b[w]&(1<<bit) != 0
}

func (b *Board) Set(sq square.Square) {
	w, bit := wordOf(sq)
	b[w] |= 1 << bit
}

func (b *Board) Unset(sq square.Square) {
	w, bit := wordOf(sq)
	b[w] &^= 1 << bit
}

// Union, Intersect, Xor, and AndNot are the core set-algebra
// operations required by spec.md §3.2.
func (b Board) Union(o Board) Board {
	return Board{b[0] | o[0], b[1] | o[1], b[2] | o[2], b[3] | o[3]}
}

func (b Board) Intersect(o Board) Board {
	return Board{b[0] & o[0], b[1] & o[1], b[2] & o[2], b[3] & o[3]}
}

func (b Board) Xor(o Board) Board {
	return Board{b[0] ^ o[0], b[1] ^ o[1], b[2] ^ o[2], b[3] ^ o[3]}
}

// AndNot returns b with every square of o removed.
func (b Board) AndNot(o Board) Board {
	return Board{b[0] &^ o[0], b[1] &^ o[1], b[2] &^ o[2], b[3] &^ o[3]}
}

// Complement returns mask with every square of b removed; masked
// complement (rather than a raw bitwise NOT) is the only sound
// definition on an irregular 196-bit board, since the unused high
// bits of the top word and every corner-hole bit must never be set.
func (b Board) Complement(mask Board) Board {
	return mask.AndNot(b)
}

func (b Board) Empty() bool {
	return b[0] == 0 && b[1] == 0 && b[2] == 0 && b[3] == 0
}

func (b Board) Equal(o Board) bool {
	return b == o
}

func (b Board) Count() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) +
		bits.OnesCount64(b[2]) + bits.OnesCount64(b[3])
}

// FirstOne returns the lowest-index set square, or square.None if b
// is empty.
func (b Board) FirstOne() square.Square {
	for i, w := range b {
		if w != 0 {
			return square.Square(64*i + bits.TrailingZeros64(w))
		}
	}
	return square.None
}

// LastOne returns the highest-index set square, or square.None if b
// is empty.
func (b Board) LastOne() square.Square {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0 {
			return square.Square(64*i + 63 - bits.LeadingZeros64(b[i]))
		}
	}
	return square.None
}

// Pop removes and returns the lowest-index set square.
func (b Board) Pop() (square.Square, Board) {
	sq := b.FirstOne()
	if sq == square.None {
		return square.None, b
	}
	b.Unset(sq)
	return sq, b
}

// Squares returns every set square in ascending order. Convenience
// for tests and diagnostics; hot paths should use Pop in a loop
// instead of allocating a slice.
func (b Board) Squares() []square.Square {
	out := make([]square.Square, 0, b.Count())
	for sq, bb := b.Pop(); sq != square.None; sq, bb = bb.Pop() {
		out = append(out, sq)
	}
	return out
}
