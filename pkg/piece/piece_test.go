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

package piece_test

import (
	"testing"

	"github.com/godwin-jg/quadrachess/pkg/piece"
)

func TestNewFromStringThenStringRoundTrips(t *testing.T) {
	for _, c := range piece.Colors {
		for _, ty := range piece.Types {
			p := piece.New(c, ty)
			s := p.String()

			got, ok := piece.NewFromString(s)
			if !ok {
				t.Fatalf("NewFromString(%q) failed", s)
			}
			if got != p {
				t.Errorf("NewFromString(%q) = %v, want %v", s, got, p)
			}
		}
	}
}

func TestNewFromStringRejectsMalformedInput(t *testing.T) {
	tests := []string{"", "r", "rpp", "xp", "rx"}
	for _, s := range tests {
		if _, ok := piece.NewFromString(s); ok {
			t.Errorf("NewFromString(%q) should have failed", s)
		}
	}
}

func TestNoneIsNeverAValidColorOrType(t *testing.T) {
	if piece.None.Color() == piece.Red || piece.None.Color() == piece.Blue ||
		piece.None.Color() == piece.Yellow || piece.None.Color() == piece.Green {
		t.Error("piece.None.Color() aliases a real color")
	}
	if !piece.None.IsNone() {
		t.Error("piece.None.IsNone() should be true")
	}
}

func TestOppositeIsAnInvolution(t *testing.T) {
	for _, c := range piece.Colors {
		if got := c.Opposite().Opposite(); got != c {
			t.Errorf("%s.Opposite().Opposite() = %s, want %s", c, got, c)
		}
	}
}

func TestTeamPartitionsOppositeSeats(t *testing.T) {
	if piece.Red.Team() != piece.Yellow.Team() {
		t.Error("red and yellow should share a team")
	}
	if piece.Blue.Team() != piece.Green.Team() {
		t.Error("blue and green should share a team")
	}
	if piece.Red.Team() == piece.Blue.Team() {
		t.Error("red and blue should be on opposite teams")
	}
}

func TestNextCyclesThroughAllFourColors(t *testing.T) {
	c := piece.Red
	seen := map[piece.Color]bool{c: true}
	for i := 0; i < piece.ColorN-1; i++ {
		c = c.Next()
		seen[c] = true
	}
	if len(seen) != piece.ColorN {
		t.Errorf("Next() cycled through %d distinct colors, want %d", len(seen), piece.ColorN)
	}
	if c.Next() != piece.Red {
		t.Error("Next() should cycle back to Red after a full loop")
	}
}

func TestBishopAndRookShareValue(t *testing.T) {
	if piece.Bishop.Value() != piece.Rook.Value() {
		t.Errorf("Bishop.Value()=%d should equal Rook.Value()=%d", piece.Bishop.Value(), piece.Rook.Value())
	}
}
