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

// Command datagen plays self-play games and writes a gob-encoded
// sample file for internal/tuner to read, grounded on the teacher's
// scripts/datagen entry point.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/godwin-jg/quadrachess/internal/datagen"
)

func main() {
	games := flag.Int("games", 100, "number of self-play games to generate")
	maxPlies := flag.Int("maxplies", 200, "longest a single game is allowed to run, in plies")
	depth := flag.Int("depth", 4, "search depth each self-play move uses")
	workers := flag.Int("workers", 4, "number of games to play concurrently")
	out := flag.String("out", "samples.gob", "output file for the gob-encoded sample set")
	flag.Parse()

	bar := progressbar.Default(int64(*games), "self-play")

	samples, err := datagen.Generate(datagen.Config{
		Games:       *games,
		MaxPlies:    *maxPlies,
		SearchDepth: *depth,
		Workers:     *workers,
	}, func() { bar.Add(1) })
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := datagen.WriteSamples(f, samples); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("\nwrote %d samples to %s\n", len(samples), *out)
}
