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

// Scored packs a Move and an int32 ordering score into one value so
// a slice of them sorts/scans without pointer chasing, mirroring the
// teacher's OrderedMove[T] packing in pkg/board/move/ordered.go.
type Scored struct {
	Move  Move
	Score int32
}

// List is a list of moves annotated with ordering scores. Moves are
// picked one at a time via Pick rather than fully sorted up front,
// since alpha-beta cutoffs mean most of the list is never visited
// (mirroring the teacher's PickMove selection-sort-per-pick).
type List struct {
	items []Scored
}

func NewList(capacity int) *List {
	return &List{items: make([]Scored, 0, capacity)}
}

func (l *List) Add(m Move, score int32) {
	l.items = append(l.items, Scored{Move: m, Score: score})
}

func (l *List) Len() int { return len(l.items) }

// Pick selects the highest-scoring remaining move starting at index
// from, swaps it into position from, and returns it. Callers iterate
// from 0..Len()-1 calling Pick(i) to visit moves best-score-first.
func (l *List) Pick(from int) Scored {
	best := from
	for i := from + 1; i < len(l.items); i++ {
		if l.items[i].Score > l.items[best].Score {
			best = i
		}
	}
	l.items[from], l.items[best] = l.items[best], l.items[from]
	return l.items[from]
}

// All returns the moves in raw (unordered) slice form, for callers
// that don't care about search ordering.
func (l *List) All() []Move {
	out := make([]Move, len(l.items))
	for i, s := range l.items {
		out[i] = s.Move
	}
	return out
}
