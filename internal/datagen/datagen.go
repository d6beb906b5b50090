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

// Package datagen plays bot-vs-bot self-play games and records
// (position, outcome) samples for internal/tuner, grounded on the
// teacher's pkg/search/eval/classical/tuner/datagen/generate.go, which
// walks a directory of human PGNs instead: this variant has no PGN
// corpus to draw on, so the samples come from the bot's own search
// playing against itself, the self-play generation mode every tuning
// paper treats as the fallback when labelled human games aren't
// available.
package datagen

import (
	"context"
	"encoding/gob"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/godwin-jg/quadrachess/internal/xerrors"
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/quadchess"
	"github.com/godwin-jg/quadrachess/pkg/search"
)

// Sample is one recorded training example: a position together with
// the eventual game outcome from its side to move's point of view (1
// if that color went on to win, 0 otherwise; this variant has no
// draws, per spec.md's checkmate/stalemate-both-eliminate rule).
type Sample struct {
	Pos     board.Position
	Outcome float64
}

// Config controls one self-play generation run.
type Config struct {
	Games       int
	MaxPlies    int
	SearchDepth int
	Workers     int
}

// Generate plays cfg.Games self-play games in parallel (cfg.Workers
// goroutines, via golang.org/x/sync/errgroup) and returns every
// sampled position across all of them. progress, if non-nil, is
// called once per completed game for progress reporting.
func Generate(cfg Config, progress func()) ([]Sample, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make(chan []Sample, cfg.Games)
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for i := 0; i < cfg.Games; i++ {
		g.Go(func() error {
			results <- playGame(cfg.MaxPlies, cfg.SearchDepth)
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	var samples []Sample
	collected := 0
	for collected < cfg.Games {
		select {
		case s := <-results:
			samples = append(samples, s...)
			collected++
			if progress != nil {
				progress()
			}
		case err := <-done:
			if err != nil {
				return samples, err
			}
		}
	}

	return samples, nil
}

// playGame plays one self-play game to completion (or maxPlies,
// whichever comes first), sampling every position along the way with
// a placeholder outcome that gets backfilled once the game's winner
// is known.
func playGame(maxPlies, searchDepth int) []Sample {
	game := quadchess.Initial(false, [piece.ColorN]int{}, 0)
	ctx := search.NewContext(game.Position())

	type pending struct {
		pos   board.Position
		mover piece.Color
	}
	var recorded []pending

plies:
	for ply := 0; ply < maxPlies; ply++ {
		pos := game.Position()
		if len(pos.ActiveColors()) <= 1 {
			break
		}

		recorded = append(recorded, pending{pos: *pos, mover: pos.Turn})

		ctx.Board = pos
		pv, _, err := ctx.Search(search.Limits{Depth: searchDepth})
		if err != nil {
			break
		}
		best := pv.Best()

		_, err = game.Apply(best.Source(), best.Target(), nil)
		switch {
		case err == nil:
			// committed normally

		case errors.Is(err, xerrors.ErrPromotionRequired):
			// always promote to a queen during self-play, since it
			// dominates the other choices in the overwhelming
			// majority of positions.
			if _, err := game.CompletePromotion(piece.Queen); err != nil {
				break plies
			}

		default:
			break plies
		}
	}

	winner, hasWinner := winnerOf(game.Position())

	samples := make([]Sample, len(recorded))
	for i, r := range recorded {
		outcome := 0.0
		if hasWinner && r.mover == winner {
			outcome = 1.0
		}
		samples[i] = Sample{Pos: r.pos, Outcome: outcome}
	}
	return samples
}

// winnerOf reports the sole remaining active color, if the game has
// been reduced to exactly one, the only outcome this variant's rules
// (spec.md §4.4) label unambiguously as a win.
func winnerOf(pos *board.Position) (piece.Color, bool) {
	active := pos.ActiveColors()
	if len(active) == 1 {
		return active[0], true
	}
	return piece.ColorNone, false
}

// WriteSamples gob-encodes samples to w.
func WriteSamples(w io.Writer, samples []Sample) error {
	return gob.NewEncoder(w).Encode(samples)
}

// ReadSamples decodes a sample set previously written by WriteSamples.
func ReadSamples(r io.Reader) ([]Sample, error) {
	var samples []Sample
	if err := gob.NewDecoder(r).Decode(&samples); err != nil {
		return nil, err
	}
	return samples, nil
}
