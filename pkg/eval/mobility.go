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

import (
	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/piece"
)

// mobilityWeight is the small per-attacked-square bonus of
// spec.md §4.5's mobility term.
const mobilityWeight Eval = 2

// mobility counts c's attacked squares directly off the cached
// AttackMaps rather than regenerating moves, since AttackMaps is
// already recomputed for every color by board.RecomputeDerived.
func mobility(pos *board.Position, c piece.Color) Eval {
	if pos.Eliminated[c] {
		return 0
	}
	return mobilityWeight * Eval(pos.AttackMaps[c].Count())
}
