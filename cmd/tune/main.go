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

// Command tune reads a sample file written by cmd/datagen and runs
// internal/tuner's coordinate search over eval.Weights, grounded on
// the teacher's scripts/tune entry point.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/godwin-jg/quadrachess/internal/datagen"
	"github.com/godwin-jg/quadrachess/internal/tuner"
)

func main() {
	in := flag.String("in", "samples.gob", "gob-encoded sample file written by cmd/datagen")
	plot := flag.String("plot", "error-plot.html", "path to write the error-vs-step chart to")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	samples, err := datagen.ReadSamples(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result, err := tuner.Tune(samples, *plot)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("best weights: %+v\n", result.Weights)
	fmt.Printf("mean squared error: %v\n", result.Error)
	fmt.Printf("error plot written to %s\n", *plot)
}
