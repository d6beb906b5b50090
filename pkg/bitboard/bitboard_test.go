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

package bitboard_test

import (
	"testing"

	"github.com/godwin-jg/quadrachess/pkg/bitboard"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

func TestSetThenIsSetRoundTrips(t *testing.T) {
	var b bitboard.Board
	sq := square.New(5, 7)

	if b.IsSet(sq) {
		t.Fatal("fresh board should have no squares set")
	}
	b.Set(sq)
	if !b.IsSet(sq) {
		t.Error("IsSet should be true after Set")
	}
	b.Unset(sq)
	if b.IsSet(sq) {
		t.Error("IsSet should be false after Unset")
	}
}

func TestOfBuildsExactlyTheGivenSquares(t *testing.T) {
	a := square.New(3, 4)
	c := square.New(10, 2)
	b := bitboard.Of(a, c)

	if b.Count() != 2 {
		t.Errorf("Count() = %d, want 2", b.Count())
	}
	if !b.IsSet(a) || !b.IsSet(c) {
		t.Error("Of should set every given square")
	}
}

func TestUnionIntersectXorAndNot(t *testing.T) {
	a := bitboard.Of(square.New(0, 3), square.New(5, 5))
	c := bitboard.Of(square.New(5, 5), square.New(8, 8))

	union := a.Union(c)
	if union.Count() != 3 {
		t.Errorf("Union.Count() = %d, want 3", union.Count())
	}

	inter := a.Intersect(c)
	if inter.Count() != 1 || !inter.IsSet(square.New(5, 5)) {
		t.Error("Intersect should contain only the shared square")
	}

	xor := a.Xor(c)
	if xor.Count() != 2 || xor.IsSet(square.New(5, 5)) {
		t.Error("Xor should contain only the non-shared squares")
	}

	andNot := a.AndNot(c)
	if !andNot.IsSet(square.New(0, 3)) || andNot.IsSet(square.New(5, 5)) {
		t.Error("AndNot should remove every square also in the operand")
	}
}

func TestEmptyAndEqual(t *testing.T) {
	var zero bitboard.Board
	if !zero.Empty() {
		t.Error("zero-value Board should be Empty")
	}

	a := bitboard.Of(square.New(1, 1))
	b := bitboard.Of(square.New(1, 1))
	if !a.Equal(b) {
		t.Error("two boards with the same single square should be Equal")
	}
	if a.Empty() {
		t.Error("a board with a set square should not be Empty")
	}
}

func TestFirstOneAndLastOneSpanBothWords(t *testing.T) {
	low := square.New(0, 3)   // low index, word 0
	high := square.New(13, 10) // high index, likely word 2/3
	b := bitboard.Of(low, high)

	if got := b.FirstOne(); got != low {
		t.Errorf("FirstOne() = %v, want %v", got, low)
	}
	if got := b.LastOne(); got != high {
		t.Errorf("LastOne() = %v, want %v", got, high)
	}
}

func TestFirstOneOnEmptyBoardIsNone(t *testing.T) {
	var b bitboard.Board
	if got := b.FirstOne(); got != square.None {
		t.Errorf("FirstOne() on an empty board = %v, want square.None", got)
	}
}

func TestPopRemovesTheLowestSetSquare(t *testing.T) {
	a := square.New(0, 3)
	c := square.New(9, 9)
	b := bitboard.Of(a, c)

	got, rest := b.Pop()
	if got != a {
		t.Errorf("Pop() first return = %v, want %v", got, a)
	}
	if rest.Count() != 1 || !rest.IsSet(c) {
		t.Error("Pop() should leave exactly the other square set")
	}
}

func TestSquaresReturnsEveryBitInAscendingOrder(t *testing.T) {
	sqs := []square.Square{square.New(0, 3), square.New(5, 5), square.New(9, 9)}
	b := bitboard.Of(sqs...)

	got := b.Squares()
	if len(got) != len(sqs) {
		t.Fatalf("Squares() returned %d squares, want %d", len(got), len(sqs))
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("Squares() not ascending: %v then %v", got[i-1], got[i])
		}
	}
}
