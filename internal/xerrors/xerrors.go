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

// Package xerrors defines the sentinel errors surfaced across the
// quadchess API boundary (spec.md §7), in the teacher's plain
// errors.New style (pkg/search/search.go).
package xerrors

import "errors"

var (
	// ErrIllegalMove means the requested move does not appear in the
	// legal move set for the specified piece.
	ErrIllegalMove = errors.New("quadchess: illegal move")

	// ErrNotYourTurn means the piece belongs to a color that is not
	// currently to move, or has been eliminated.
	ErrNotYourTurn = errors.New("quadchess: not your turn")

	// ErrNoSuchPiece means the from-square is empty or does not hold
	// the expected piece.
	ErrNoSuchPiece = errors.New("quadchess: no such piece")

	// ErrPromotionRequired means a move reaches a promotion zone
	// without a promotion choice. In synchronous mode nothing changes;
	// in asynchronous mode the game also enters the awaiting-promotion
	// substate, to be resolved by CompletePromotion.
	ErrPromotionRequired = errors.New("quadchess: promotion choice required")

	// ErrNoPendingPromotion means completePromotion was called while
	// the game was not awaiting one.
	ErrNoPendingPromotion = errors.New("quadchess: no pending promotion")

	// ErrCancelled reports a search cancelled before depth 1
	// completed. No function in this module returns it at present.
	ErrCancelled = errors.New("quadchess: search cancelled before first iteration")
)

// ReasonSkipTurn is an alternative to board.ReasonResignation for a
// bot that exhausts its move retries: skip its turn instead of
// resigning it from the game. Unused by default (spec.md leaves the
// choice open); a host may wire it into its own retry-exhaustion
// handling in place of Game.Resign.
const ReasonSkipTurn = "skip-turn"
