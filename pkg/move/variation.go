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

package move

import "strings"

// Variation is a principal variation line, built bottom-up as the
// search recursion unwinds: at depth d, Update(m, childPV) records m
// followed by the line the child node reported for its own subtree.
type Variation struct {
	moves []Move
}

func (v *Variation) Clear() { v.moves = v.moves[:0] }

func (v *Variation) Update(m Move, child Variation) {
	v.moves = append(v.moves[:0], m)
	v.moves = append(v.moves, child.moves...)
}

func (v Variation) Move(i int) Move {
	if i < 0 || i >= len(v.moves) {
		return Null
	}
	return v.moves[i]
}

func (v Variation) Len() int { return len(v.moves) }

func (v Variation) Best() Move { return v.Move(0) }

func (v Variation) String() string {
	parts := make([]string, len(v.moves))
	for i, m := range v.moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
