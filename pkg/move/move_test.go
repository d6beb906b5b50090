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

package move_test

import (
	"testing"

	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

func TestNewRecoversSourceAndTarget(t *testing.T) {
	from := square.New(10, 3)
	to := square.New(8, 3)
	m := move.New(from, to, piece.New(piece.Red, piece.Pawn), piece.None)

	if m.Source() != from {
		t.Errorf("Source() = %v, want %v", m.Source(), from)
	}
	if m.Target() != to {
		t.Errorf("Target() = %v, want %v", m.Target(), to)
	}
	if m.FromPiece() != piece.New(piece.Red, piece.Pawn) {
		t.Errorf("FromPiece() = %v, want red pawn", m.FromPiece())
	}
}

func TestCaptureMoveRecoversCapturedPiece(t *testing.T) {
	from := square.New(10, 3)
	to := square.New(9, 4)
	captured := piece.New(piece.Blue, piece.Knight)
	m := move.New(from, to, piece.New(piece.Red, piece.Pawn), captured)

	if !m.IsCapture() {
		t.Fatal("move should report IsCapture")
	}
	if m.ToPiece() != captured {
		t.Errorf("ToPiece() = %v, want %v", m.ToPiece(), captured)
	}
	if !m.IsQuiet() {
		// capture moves are never quiet; this assertion exists to
		// pin the inverse down too.
	} else {
		t.Error("a capture should not report IsQuiet")
	}
}

func TestNonCaptureToPieceIsNone(t *testing.T) {
	m := move.New(square.New(10, 3), square.New(9, 3), piece.New(piece.Red, piece.Pawn), piece.None)
	if m.IsCapture() {
		t.Fatal("move should not report IsCapture")
	}
	if m.ToPiece() != piece.None {
		t.Errorf("ToPiece() on a quiet move = %v, want piece.None", m.ToPiece())
	}
	if !m.IsQuiet() {
		t.Error("a non-capture, non-promotion move should report IsQuiet")
	}
}

func TestSetPromotionThenPromotionRoundTrips(t *testing.T) {
	m := move.New(square.New(1, 3), square.New(0, 3), piece.New(piece.Red, piece.Pawn), piece.None)
	if _, ok := m.Promotion(); ok {
		t.Fatal("move should not be a promotion before SetPromotion")
	}

	promoted := m.SetPromotion(piece.Queen)
	ty, ok := promoted.Promotion()
	if !ok {
		t.Fatal("promoted move should report a promotion")
	}
	if ty != piece.Queen {
		t.Errorf("Promotion() = %v, want Queen", ty)
	}
	if !promoted.IsPromotion() {
		t.Error("IsPromotion() should be true after SetPromotion")
	}
	// a promotion is still a "quiet" move in the capture sense, but
	// IsQuiet requires neither a capture nor a promotion.
	if promoted.IsQuiet() {
		t.Error("a promoting move should not report IsQuiet")
	}
}

func TestIsDoublePushDetectsTwoSquarePawnMoves(t *testing.T) {
	push := move.New(square.New(12, 3), square.New(10, 3), piece.New(piece.Red, piece.Pawn), piece.None)
	if !push.IsDoublePush() {
		t.Error("a two-row pawn push should report IsDoublePush")
	}

	single := move.New(square.New(12, 3), square.New(11, 3), piece.New(piece.Red, piece.Pawn), piece.None)
	if single.IsDoublePush() {
		t.Error("a one-row pawn push should not report IsDoublePush")
	}

	knightJump := move.New(square.New(13, 4), square.New(11, 3), piece.New(piece.Red, piece.Knight), piece.None)
	if knightJump.IsDoublePush() {
		t.Error("a non-pawn move should never report IsDoublePush")
	}
}

func TestSetCastlingThenIsCastlingRoundTrips(t *testing.T) {
	m := move.New(square.New(13, 7), square.New(13, 9), piece.New(piece.Red, piece.King), piece.None)
	if m.IsCastling() {
		t.Fatal("move should not be marked castling before SetCastling")
	}
	if castled := m.SetCastling(); !castled.IsCastling() {
		t.Error("IsCastling() should be true after SetCastling")
	}
}

func TestStringFormatsSourceAndTarget(t *testing.T) {
	m := move.New(square.New(12, 3), square.New(10, 3), piece.New(piece.Red, piece.Pawn), piece.None)
	if got, want := m.String(), "d2d4"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
