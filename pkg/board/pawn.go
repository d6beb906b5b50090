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

package board

import "github.com/godwin-jg/quadrachess/pkg/piece"

// pawnGeometry describes one color's pawn advance direction, the
// coordinate of its starting (home) rank/file, and the coordinate a
// pawn must reach to promote (spec.md §3.3: R advances toward row 0,
// Y toward row 13, B toward col 13, G toward col 0).
type pawnGeometry struct {
	Forward        [2]int // (drow, dcol) of a single forward step
	HomeCoord      int    // row (Axis 0) or col (Axis 1) pawns start on
	PromotionCoord int    // row/col reaching the far edge, where pawns promote
	Axis           int    // 0: row varies (R/Y), 1: col varies (B/G)
}

var pawnGeo = [piece.ColorN]pawnGeometry{
	piece.Red:    {Forward: [2]int{-1, 0}, HomeCoord: 12, PromotionCoord: 0, Axis: 0},
	piece.Yellow: {Forward: [2]int{1, 0}, HomeCoord: 1, PromotionCoord: 13, Axis: 0},
	piece.Blue:   {Forward: [2]int{0, 1}, HomeCoord: 1, PromotionCoord: 13, Axis: 1},
	piece.Green:  {Forward: [2]int{0, -1}, HomeCoord: 12, PromotionCoord: 0, Axis: 1},
}

func (g pawnGeometry) coord(row, col int) int {
	if g.Axis == 0 {
		return row
	}
	return col
}

func (g pawnGeometry) isHome(row, col int) bool {
	return g.coord(row, col) == g.HomeCoord
}

func (g pawnGeometry) isPromotion(row, col int) bool {
	return g.coord(row, col) == g.PromotionCoord
}
