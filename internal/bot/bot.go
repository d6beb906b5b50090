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

// Package bot drives a search.Context against a live quadchess.Game on
// the bot's behalf: picking a root move with search.SelectMove's
// randomization (spec.md §4.6.7), then validating and committing it
// with the retry-then-resign fallback spec.md §4.6.8 asks for, since a
// networked host may have advanced the position out from under a
// search that already started.
package bot

import (
	"fmt"
	"math/rand"

	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/quadchess"
	"github.com/godwin-jg/quadrachess/pkg/search"
)

// MaxRetries is the largest number of times PlayMove will re-search
// and re-validate before giving up and resigning the bot, spec.md
// §4.6.8's "retry up to a small maximum".
const MaxRetries = 3

// PlayMove searches game's current position, selects a root move via
// search.SelectMove, and applies it. If the chosen move turns out to
// no longer belong to the color that was searching, or is no longer
// legal (the position moved on between the search starting and the
// move being committed, possible in a networked host), it clears
// ctx's transposition table and retries up to MaxRetries times before
// resigning that color to keep the game progressing. rng is passed
// straight to SelectMove; pass nil to use its default source.
func PlayMove(game *quadchess.Game, ctx *search.Context, limits search.Limits, rng *rand.Rand) (move.Move, error) {
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		pos := game.Position()
		searchingColor := pos.Turn

		ctx.Board = pos
		if _, _, err := ctx.Search(limits); err != nil {
			return move.Null, fmt.Errorf("bot: search: %w", err)
		}

		chosen := search.SelectMove(ctx.RootMoves(), rng)
		if chosen == move.Null {
			return move.Null, fmt.Errorf("bot: search returned no root move")
		}

		if valid(game, searchingColor, chosen) {
			var promotion *piece.Type
			if t, ok := chosen.Promotion(); ok {
				promotion = &t
			}
			if _, err := game.Apply(chosen.Source(), chosen.Target(), promotion); err != nil {
				return move.Null, fmt.Errorf("bot: applying a validated move failed: %w", err)
			}
			return chosen, nil
		}

		ctx.ClearTT()
	}

	game.Resign(game.Position().Turn)
	return move.Null, fmt.Errorf("bot: exhausted %d retries, resigned", MaxRetries)
}

// valid reports whether m is still a legal move for color on game's
// current position, the check spec.md §4.6.8 requires before
// committing a move a search chose against a possibly-stale position.
func valid(game *quadchess.Game, color piece.Color, m move.Move) bool {
	pos := game.Position()
	if pos.Turn != color {
		return false
	}
	if pos.PieceAt(m.Source()).Color() != color {
		return false
	}
	for _, legal := range pos.LegalMoves() {
		if legal == m {
			return true
		}
	}
	return false
}
