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

// Package searchtime implements the time managers used to bound a
// search's wall-clock length, grounded on the teacher's
// pkg/search/time/manager.go. It is named searchtime rather than
// time since the teacher's package name collides with the standard
// library package every file in here also needs.
package searchtime

import (
	"time"

	"github.com/godwin-jg/quadrachess/pkg/piece"
)

// Manager represents a time manager.
type Manager interface {
	// GetDeadline calculates the optimal amount of time to be used
	// and sets a deadline internally for the search's end.
	GetDeadline()

	// ExtendDeadline is called when the engine wants to extend the
	// search's length. A deadline extension may fail.
	ExtendDeadline()

	// Expired reports if the search deadline has been crossed.
	Expired() bool
}

// NormalManager is the standard time manager, working off each
// active color's remaining clock and increment (spec.md §3.4's
// Clocks, generalized here from the teacher's two-color Time/
// Increment arrays to one entry per seat).
type NormalManager struct {
	Us piece.Color // side to move

	Time, Increment [piece.ColorN]int64 // milliseconds
	MovesToGo       int

	deadline time.Time
}

var _ Manager = (*NormalManager)(nil)

func (c *NormalManager) GetDeadline() {
	c.deadline = time.Now().Add((time.Duration(c.Time[c.Us]) * time.Millisecond) / 20)
}

func (c *NormalManager) ExtendDeadline() {
	c.deadline = c.deadline.Add((time.Duration(c.Time[c.Us]) * time.Millisecond) / 30)
}

func (c *NormalManager) Expired() bool {
	return time.Now().After(c.deadline)
}

// MoveManager is the time manager used when the caller wants to time
// a search by a fixed move-time budget. Its deadline cannot be
// extended.
type MoveManager struct {
	Duration int // milliseconds
	deadline time.Time
}

var _ Manager = (*MoveManager)(nil)

func (c *MoveManager) GetDeadline() {
	c.deadline = time.Now().Add(time.Duration(c.Duration) * time.Millisecond)
}

func (c *MoveManager) ExtendDeadline() {
	// can't extend deadline: search time is fixed
}

func (c *MoveManager) Expired() bool {
	return time.Now().After(c.deadline)
}

// InfiniteManager never expires; used for "search until stopped"
// requests (spec.md's Infinite limit) where no deadline applies.
type InfiniteManager struct{}

var _ Manager = InfiniteManager{}

func (InfiniteManager) GetDeadline()    {}
func (InfiniteManager) ExtendDeadline() {}
func (InfiniteManager) Expired() bool   { return false }
