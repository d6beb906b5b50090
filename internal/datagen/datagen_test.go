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

package datagen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeneratePlaysShallowSelfPlayGamesAndRecordsSamples runs a tiny
// self-play batch (shallow search, a handful of plies, two workers)
// and checks every sample it records carries an in-range outcome.
func TestGeneratePlaysShallowSelfPlayGamesAndRecordsSamples(t *testing.T) {
	samples, err := Generate(Config{
		Games:       2,
		MaxPlies:    4,
		SearchDepth: 1,
		Workers:     2,
	}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, samples, "a 4-ply self-play game should record at least one sample")

	for _, s := range samples {
		assert.Contains(t, []float64{0, 1}, s.Outcome, "outcome should be exactly 0 or 1 in a no-draws variant")
	}
}

// TestGenerateCallsProgressOncePerGame checks the progress callback
// fires exactly once per completed game, the contract cmd/datagen's
// progress bar relies on.
func TestGenerateCallsProgressOncePerGame(t *testing.T) {
	calls := 0
	_, err := Generate(Config{
		Games:       3,
		MaxPlies:    2,
		SearchDepth: 1,
		Workers:     1,
	}, func() { calls++ })
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

// TestWriteSamplesThenReadSamplesRoundTrips checks the gob encoding
// round trip preserves every sample's position and outcome.
func TestWriteSamplesThenReadSamplesRoundTrips(t *testing.T) {
	samples, err := Generate(Config{
		Games:       1,
		MaxPlies:    4,
		SearchDepth: 1,
		Workers:     1,
	}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, samples)

	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, samples))

	roundTripped, err := ReadSamples(&buf)
	require.NoError(t, err)
	require.Len(t, roundTripped, len(samples))

	for i := range samples {
		assert.Equal(t, samples[i].Outcome, roundTripped[i].Outcome)
		assert.Equal(t, samples[i].Pos.Turn, roundTripped[i].Pos.Turn)
		assert.Equal(t, samples[i].Pos.Hash, roundTripped[i].Pos.Hash)
	}
}
