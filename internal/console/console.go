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

// Package console implements a text REPL driving a quadchess.Game and
// its bot search, grounded on the teacher's pkg/uci package's
// Client/Schema/command-loop shape. It is not UCI: there is no GUI
// protocol to speak, no FEN, and a command addresses one of four
// seats rather than a single side to move, so the command set and
// wire vocabulary are this console's own.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/godwin-jg/quadrachess/internal/bot"
	"github.com/godwin-jg/quadrachess/internal/console/cmd"
	"github.com/godwin-jg/quadrachess/internal/console/flag"
	"github.com/godwin-jg/quadrachess/pkg/eval"
	"github.com/godwin-jg/quadrachess/pkg/move"
	"github.com/godwin-jg/quadrachess/pkg/piece"
	"github.com/godwin-jg/quadrachess/pkg/quadchess"
	"github.com/godwin-jg/quadrachess/pkg/search"
	"github.com/godwin-jg/quadrachess/pkg/square"
)

// errQuit is returned by the quit command to stop the repl, mirroring
// the teacher's uci.errQuit sentinel.
var errQuit = fmt.Errorf("console: quit requested")

// NewClient creates a new console Client with every built-in command
// registered, listening on stdin/stdout and holding a fresh game at
// the standard four-player starting position.
func NewClient() *Client {
	return newClientWith(os.Stdin, os.Stdout)
}

// newClientWith is NewClient with its I/O streams injected, so tests
// can drive the REPL against an in-memory reader/writer instead of the
// real stdin/stdout.
func newClientWith(stdin io.Reader, stdout io.Writer) *Client {
	c := &Client{
		stdin:  stdin,
		stdout: stdout,

		game:   quadchess.Initial(false, [piece.ColorN]int{}, 0),
		search: nil,
	}
	c.game.SetPromotionMode(quadchess.PromotionAsynchronous)
	c.commands = cmd.NewSchema(c.stdout)
	c.search = search.NewContext(c.game.Position())

	c.addCommand(cmdMove)
	c.addCommand(cmdGo)
	c.addCommand(cmdShow)
	c.addCommand(cmdBoard)
	c.addCommand(cmdResign)
	c.addCommand(cmdNewGame)
	c.addCommand(cmdQuit)
	bind(c)
	return c
}

// Client holds the REPL's I/O streams, command schema, and the live
// game/search state every command operates on.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands cmd.Schema

	game   *quadchess.Game
	search *search.Context
}

func (c *Client) addCommand(command cmd.Command) {
	c.commands.Add(command)
}

// Start runs the read-eval-print loop until a command returns
// errQuit or the input stream ends.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		c.Print("> ")
		prompt, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		args := strings.Fields(prompt)
		if len(args) == 0 {
			continue
		}

		switch err := c.RunWith(args); err {
		case nil:
			// continue the loop

		case errQuit:
			return nil

		default:
			c.Println(err)
		}
	}
}

// RunWith finds the command named by args[0] and runs it with the
// remaining arguments.
func (c *Client) RunWith(args []string) error {
	name, args := args[0], args[1:]

	command, found := c.commands.Get(name)
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}
	return command.RunWith(args, c.commands)
}

func (c *Client) Print(a ...any) (int, error)   { return fmt.Fprint(c.stdout, a...) }
func (c *Client) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(c.stdout, format, a...)
}
func (c *Client) Println(a ...any) (int, error) { return fmt.Fprintln(c.stdout, a...) }

// client is the single package-level Client that command Run
// functions close over, mirroring the teacher's cmdQuit/cmdIsReady
// pattern of free functions registered into whatever schema calls
// them: NewClient always rebuilds it, so only one Client is ever live
// per process, which matches cmd/play's single-game-at-a-time usage.
var client *Client

func bind(c *Client) { client = c }

var cmdQuit = cmd.Command{
	Name: "quit",
	Run: func(cmd.Interaction) error {
		return errQuit
	},
}

var cmdShow = cmd.Command{
	Name: "show",
	Run: func(i cmd.Interaction) error {
		pos := client.game.Position()
		i.Reply(renderBoard(pos))
		i.Reply(scoreboard(pos))
		return nil
	},
}

// cmdBoard redraws the board as a single termui frame rather than
// plain text, falling back to "show"'s plain rendering when stdout
// isn't a real terminal (piped output, a CI log) since termui has
// nothing usable to draw to in that case.
var cmdBoard = cmd.Command{
	Name: "board",
	Run: func(i cmd.Interaction) error {
		if f, ok := client.stdout.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
			pos := client.game.Position()
			i.Reply(renderBoard(pos))
			i.Reply(scoreboard(pos))
			return nil
		}
		return showBoard(client.game.Position())
	},
}

var cmdNewGame = cmd.Command{
	Name: "newgame",
	Run: func(i cmd.Interaction) error {
		client.game.Reset()
		client.search = search.NewContext(client.game.Position())
		i.Reply("new game started")
		return nil
	},
}

var cmdResign = cmd.Command{
	Name: "resign",
	Flags: func() flag.Schema {
		s := flag.NewSchema()
		s.Single("color")
		return s
	}(),
	Run: func(i cmd.Interaction) error {
		v, ok := i.Values["color"]
		if !ok {
			return fmt.Errorf("resign: missing required color flag")
		}
		color, ok := parseColor(v.Value.(string))
		if !ok {
			return fmt.Errorf("resign: unrecognised color %q", v.Value)
		}
		client.game.Resign(color)
		i.Replyf("%s resigned", color)
		return nil
	},
}

// cmdMove implements "move from <sq> to <sq> [promote <type>]",
// parsing squares with square.Parse and piece types with
// piece.NewFromString's second character vocabulary.
var cmdMove = cmd.Command{
	Name: "move",
	Flags: func() flag.Schema {
		s := flag.NewSchema()
		s.Single("from")
		s.Single("to")
		s.Single("promote")
		return s
	}(),
	Run: func(i cmd.Interaction) error {
		fromV, ok := i.Values["from"]
		if !ok {
			return fmt.Errorf("move: missing required from flag")
		}
		toV, ok := i.Values["to"]
		if !ok {
			return fmt.Errorf("move: missing required to flag")
		}

		from, ok := square.Parse(fromV.Value.(string))
		if !ok {
			return fmt.Errorf("move: invalid from square %q", fromV.Value)
		}
		to, ok := square.Parse(toV.Value.(string))
		if !ok {
			return fmt.Errorf("move: invalid to square %q", toV.Value)
		}

		var promotion *piece.Type
		if promoV, ok := i.Values["promote"]; ok {
			t, ok := parsePromotionType(promoV.Value.(string))
			if !ok {
				return fmt.Errorf("move: invalid promote type %q", promoV.Value)
			}
			promotion = &t
		}

		_, err := client.game.Apply(from, to, promotion)
		if err != nil {
			return err
		}

		client.search = search.NewContext(client.game.Position())
		i.Replyf("applied %s%s", from, to)
		return nil
	},
}

// cmdGo runs the bot search to a fixed depth (or move time) and
// prints the chosen move without applying it, unless the commit flag
// is set, in which case it plays the move through bot.PlayMove's
// randomized selection and validate/retry/resign loop instead.
var cmdGo = cmd.Command{
	Name: "go",
	Flags: func() flag.Schema {
		s := flag.NewSchema()
		s.Single("depth")
		s.Single("movetime")
		s.Single("workers")
		s.Button("commit")
		return s
	}(),
	Run: func(i cmd.Interaction) error {
		var limits search.Limits
		if v, ok := i.Values["depth"]; ok {
			depth, err := strconv.Atoi(v.Value.(string))
			if err != nil {
				return fmt.Errorf("go: invalid depth %q: %w", v.Value, err)
			}
			limits.Depth = depth
		}
		if v, ok := i.Values["movetime"]; ok {
			ms, err := strconv.Atoi(v.Value.(string))
			if err != nil {
				return fmt.Errorf("go: invalid movetime %q: %w", v.Value, err)
			}
			limits.MoveTime = ms
		}
		if limits.Depth == 0 && limits.MoveTime == 0 {
			limits.Depth = 6
		}

		workers := 1
		if v, ok := i.Values["workers"]; ok {
			w, err := strconv.Atoi(v.Value.(string))
			if err != nil {
				return fmt.Errorf("go: invalid workers %q: %w", v.Value, err)
			}
			workers = w
		}

		if _, commit := i.Values["commit"]; commit {
			if workers > 1 {
				return fmt.Errorf("go: commit doesn't support workers > 1, since bot.PlayMove needs a single Context's RootMoves")
			}
			played, err := bot.PlayMove(client.game, client.search, limits, nil)
			if err != nil {
				return fmt.Errorf("go: %w", err)
			}
			i.Replyf("played %s", played)
			return nil
		}

		var (
			pv    move.Variation
			score eval.Eval
			err   error
		)
		if workers > 1 {
			// a multi-worker search spins up its own throwaway
			// Contexts (see pkg/search/pool.go), so it doesn't warm
			// client.search's transposition table between moves;
			// fine for a one-off deep search, but "go" without
			// workers stays the default so ordinary play keeps
			// benefiting from a warm table across the game.
			pv, score, err = search.SearchParallel(client.game.Position(), limits, workers)
		} else {
			client.search.Board = client.game.Position()
			pv, score, err = client.search.Search(limits)
		}
		if err != nil {
			return fmt.Errorf("go: %w", err)
		}

		best := pv.Best()
		i.Replyf("bestmove %s%s score %s", best.Source(), best.Target(), score)
		return nil
	},
}

func parseColor(s string) (piece.Color, bool) {
	switch strings.ToLower(s) {
	case "r", "red":
		return piece.Red, true
	case "b", "blue":
		return piece.Blue, true
	case "y", "yellow":
		return piece.Yellow, true
	case "g", "green":
		return piece.Green, true
	default:
		return piece.ColorNone, false
	}
}

func parsePromotionType(s string) (piece.Type, bool) {
	p, ok := piece.NewFromString("r" + strings.ToLower(s))
	if !ok {
		return piece.TypeNone, false
	}
	return p.Type(), true
}
