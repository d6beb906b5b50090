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

package search

import (
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/search/searchtime"
)

// Limits contains the various limits which decide how long a search
// can run for, grounded on the teacher's pkg/search/limits.go,
// generalized from two clocks to one per seat.
type Limits struct {
	// search tree limits
	Nodes int
	Depth int

	// search time limits
	Infinite        bool
	MoveTime        int // milliseconds; 0 means "use the clock instead"
	Time, Increment [piece.ColorN]int64
	MovesToGo       int
}

// manager builds the searchtime.Manager that best matches these
// limits for the given side to move.
func (l Limits) manager(us piece.Color) searchtime.Manager {
	switch {
	case l.Infinite:
		return searchtime.InfiniteManager{}
	case l.MoveTime != 0:
		return &searchtime.MoveManager{Duration: l.MoveTime}
	default:
		return &searchtime.NormalManager{
			Time:      l.Time,
			Increment: l.Increment,
			MovesToGo: l.MovesToGo,
			Us:        us,
		}
	}
}
