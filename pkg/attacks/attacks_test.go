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

package attacks_test

import (
	"testing"

	"github.com/godwin-jg/quadrachess/pkg/attacks"
	"github.com/godwin-jg/quadrachess/pkg/bitboard"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// TestSlidingWithNoBlockersReturnsTheFullRay checks the open-board
// case of the blocker-scan algorithm.
func TestSlidingWithNoBlockersReturnsTheFullRay(t *testing.T) {
	sq := square.New(7, 7)
	got := attacks.Sliding(sq, attacks.East, bitboard.Board{})
	want := attacks.Ray[sq][attacks.East]
	if !got.Equal(want) {
		t.Error("Sliding with no occupancy should return the unobstructed ray")
	}
}

// TestSlidingStopsAtTheNearestBlocker checks a rook-like slide along
// an increasing-index ray halts at (and includes) the first blocker,
// the property the nearest-blocker bit-scan direction depends on.
func TestSlidingStopsAtTheNearestBlocker(t *testing.T) {
	sq := square.New(7, 3)
	near := square.New(7, 5)
	far := square.New(7, 9)
	occ := bitboard.Of(near, far)

	got := attacks.Sliding(sq, attacks.East, occ)
	if !got.IsSet(near) {
		t.Error("Sliding should include the nearest blocker square")
	}
	if got.IsSet(far) {
		t.Error("Sliding should not reach past the nearest blocker")
	}
	if !got.IsSet(square.New(7, 4)) {
		t.Error("Sliding should include every empty square up to the blocker")
	}
}

// TestSlidingStopsAtTheNearestBlockerOnADecreasingRay mirrors the
// above for a decreasing-index ray direction (West), which bit-scans
// from the opposite end.
func TestSlidingStopsAtTheNearestBlockerOnADecreasingRay(t *testing.T) {
	sq := square.New(7, 9)
	near := square.New(7, 7)
	far := square.New(7, 3)
	occ := bitboard.Of(near, far)

	got := attacks.Sliding(sq, attacks.West, occ)
	if !got.IsSet(near) {
		t.Error("Sliding should include the nearest blocker square")
	}
	if got.IsSet(far) {
		t.Error("Sliding should not reach past the nearest blocker")
	}
}

func TestBishopAndRookAreDisjointAndQueenIsTheirUnion(t *testing.T) {
	sq := square.New(7, 7)
	var occ bitboard.Board

	bishop := attacks.Bishop(sq, occ)
	rook := attacks.Rook(sq, occ)
	queen := attacks.Queen(sq, occ)

	if !bishop.Intersect(rook).Empty() {
		t.Error("bishop and rook attack sets from the same square should be disjoint")
	}
	if !queen.Equal(bishop.Union(rook)) {
		t.Error("queen attacks should equal the union of bishop and rook attacks")
	}
}

func TestBetweenReturnsTheSquaresOnASharedRay(t *testing.T) {
	a := square.New(7, 3)
	b := square.New(7, 7)

	between := attacks.Between(a, b)
	if between.IsSet(a) || between.IsSet(b) {
		t.Error("Between should exclude both endpoints")
	}
	for col := 4; col < 7; col++ {
		sq := square.New(7, col)
		if !between.IsSet(sq) {
			t.Errorf("Between should include %v, the squares strictly between a and b", sq)
		}
	}
}

func TestBetweenOffRayIsEmpty(t *testing.T) {
	a := square.New(7, 3)
	b := square.New(4, 9) // not on any of a's 8 rays
	if got := attacks.Between(a, b); !got.Empty() {
		t.Error("Between should be empty for squares sharing no ray")
	}
}

func TestKnightAttacksAreSymmetric(t *testing.T) {
	sq := square.New(7, 7)
	for _, target := range attacks.Knight[sq].Squares() {
		if !attacks.Knight[target].IsSet(sq) {
			t.Errorf("knight attack from %v to %v isn't reciprocated", sq, target)
		}
	}
}

func TestPawnAttacksAreDiagonalOnly(t *testing.T) {
	sq := square.New(12, 3)
	for _, target := range attacks.Pawn[piece.Red][sq].Squares() {
		if target.Row() != sq.Row()-1 {
			t.Errorf("red pawn attack from %v should move one row forward, got %v", sq, target)
		}
		if target.Col() == sq.Col() {
			t.Errorf("pawn attack from %v should be diagonal, got straight-ahead %v", sq, target)
		}
	}
}

func TestIsDiagonalAndIsOrthogonalPartitionAllDirections(t *testing.T) {
	for d := attacks.Direction(0); d < attacks.DirectionN; d++ {
		if attacks.IsDiagonal(d) == attacks.IsOrthogonal(d) {
			t.Errorf("direction %d should be exactly one of diagonal/orthogonal", d)
		}
	}
}
