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

// Command perft runs move generator correctness counts against the
// initial four-player position, grounded on the teacher's
// pkg/board/perft.go Perft/Divide pair, generalized from a
// fixed-fen 2-player call to board.Initial's four-player start.
//
// Usage:
//
//	perft <depth>          report the total leaf count at depth
//	perft -divide <depth>  report the leaf count after each root move
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/godwin-jg/quadrachess/pkg/board"
)

func main() {
	divide := flag.Bool("divide", false, "report per-root-move leaf counts instead of a single total")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: perft [-divide] <depth>")
		os.Exit(1)
	}

	var depth int
	if _, err := fmt.Sscanf(flag.Arg(0), "%d", &depth); err != nil {
		fmt.Fprintf(os.Stderr, "perft: invalid depth %q: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	pos := board.Initial()

	if *divide {
		runDivide(pos, depth)
		return
	}
	runPerft(pos, depth)
}

func runPerft(pos *board.Position, depth int) {
	bar := progressbar.Default(int64(depth), "perft")
	var nodes uint64
	for d := 1; d <= depth; d++ {
		nodes = pos.Perft(d)
		bar.Add(1)
	}
	fmt.Printf("\nperft(%d) = %d\n", depth, nodes)
}

func runDivide(pos *board.Position, depth int) {
	counts := pos.Divide(depth)
	var total uint64
	for move, count := range counts {
		fmt.Printf("%s: %d\n", move, count)
		total += count
	}
	fmt.Printf("\ntotal = %d\n", total)
}
