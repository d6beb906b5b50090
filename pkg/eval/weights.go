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

package eval

// Weights scales each of colorScoreWeighted's five terms independently. The
// 1.0 defaults below are the hand-picked coefficients every search
// uses; internal/tuner searches this five-dimensional space for
// values that better predict recorded game outcomes, the same role
// the teacher's pkg/search/eval/classical/tuner plays for PeSTO's much
// larger per-square term vector.
type Weights struct {
	Material     float64
	PieceSquares float64
	KingSafety   float64
	Hanging      float64
	Mobility     float64
}

// DefaultWeights leaves every term at its hand-picked value.
var DefaultWeights = Weights{
	Material:     1,
	PieceSquares: 1,
	KingSafety:   1,
	Hanging:      1,
	Mobility:     1,
}
