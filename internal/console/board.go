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

package console

import (
	"fmt"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/godwin-jg/quadrachess/pkg/board"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// renderBoard draws the 14x14 cross-shaped board as text, one two
// character piece code per playable square and three spaces for every
// square in a corner hole, matching piece.Piece.String's "rp"/"."
// vocabulary.
func renderBoard(pos *board.Position) string {
	var b strings.Builder
	for row := 0; row < square.Ranks; row++ {
		fmt.Fprintf(&b, "%2d ", square.Ranks-row)
		for col := 0; col < square.Files; col++ {
			sq := square.New(row, col)
			if !sq.Playable() {
				b.WriteString(" . ")
				continue
			}
			p := pos.PieceAt(sq)
			fmt.Fprintf(&b, "%-3s", p.String())
		}
		b.WriteByte('\n')
	}
	b.WriteString("   ")
	for col := 0; col < square.Files; col++ {
		fmt.Fprintf(&b, "%-3c", "abcdefghijklmn"[col])
	}
	return b.String()
}

// scoreboard renders one line per color's elimination/score/clock
// state, appended below the board by showBoard.
func scoreboard(pos *board.Position) string {
	var b strings.Builder
	for _, c := range piece.Colors {
		status := "active"
		if pos.Eliminated[c] {
			status = "eliminated"
		}
		if c == pos.Turn && !pos.Eliminated[c] {
			status += " (to move)"
		}
		fmt.Fprintf(&b, "%s: score=%d clock=%dms %s\n", c, pos.Scores[c], pos.Clocks[c], status)
	}
	return b.String()
}

// showBoard renders a single termui frame holding the board and
// scoreboard text, then tears the terminal UI back down immediately.
// termui is only touched for the duration of this one render: both it
// and the console's REPL read stdin line-by-line, so leaving termui's
// event loop running between commands would fight the REPL's own
// bufio.Reader for keystrokes.
func showBoard(pos *board.Position) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("console: termui init: %w", err)
	}
	defer ui.Close()

	width, height := ui.TerminalDimensions()

	p := widgets.NewParagraph()
	p.Title = "quadchess"
	p.Text = renderBoard(pos) + "\n" + scoreboard(pos)
	p.SetRect(0, 0, width, height)

	ui.Render(p)
	return nil
}
