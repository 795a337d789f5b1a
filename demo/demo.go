// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package demo generates seeded sample input for the tree builders.
package demo

import (
	"math/rand/v2"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/willf/bloom"
)

const (
	MaxOptimalNodes  = 20  // DP matrices stop being readable beyond this
	MaxNearOptNodes  = 100 // upper bound for the A1/A2 key sets
	MaxOptimalWeight = 100
	MaxNearOptWeight = 50
	MinNearOptRange  = 20 // keys are drawn from 1..max(2n, MinNearOptRange)

	seenFilterBits   = 4096
	seenFilterHashes = 4
)

// ErrInvalidCount is returned for a node count outside a generator's range.
var ErrInvalidCount = errors.New("invalid node count")

// Generator produces reproducible demo data from a seed.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded with seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func checkCount(n, limit int) error {
	if n < 0 || n > limit {
		return errors.Mark(errors.Newf("count %d is outside 0..%d", n, limit), ErrInvalidCount)
	}
	return nil
}

// OptimalWeights returns n weights in 1..MaxOptimalWeight; key k has weight
// weights[k-1].
func (g *Generator) OptimalWeights(n int) ([]int, error) {
	if err := checkCount(n, MaxOptimalNodes); err != nil {
		return nil, err
	}
	weights := make([]int, n)
	for i := range weights {
		weights[i] = g.rng.IntN(MaxOptimalWeight) + 1
	}
	return weights, nil
}

// NearOptimalWeights picks n distinct keys from a shuffled 1..max(2n, 20)
// and gives each a weight in 1..MaxNearOptWeight.
func (g *Generator) NearOptimalWeights(n int) (map[int]int, error) {
	if err := checkCount(n, MaxNearOptNodes); err != nil {
		return nil, err
	}
	available := make([]int, max(2*n, MinNearOptRange))
	for i := range available {
		available[i] = i + 1
	}
	g.rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	weights := make(map[int]int, n)
	for _, key := range available[:n] {
		weights[key] = g.rng.IntN(MaxNearOptWeight) + 1
	}
	return weights, nil
}

// UniqueValues returns n distinct values in 1..limit in generation order.
func (g *Generator) UniqueValues(n, limit int) ([]int, error) {
	if err := checkCount(n, limit); err != nil {
		return nil, err
	}
	return g.uniqueValues(n, limit, bloom.New(seenFilterBits, seenFilterHashes)), nil
}

// uniqueValues draws until n values pass the seen filter. A filter miss
// accepts the value outright; only a hit, which may be a false positive, is
// settled by the exact set.
func (g *Generator) uniqueValues(n, limit int, seenFilter *bloom.BloomFilter) []int {
	seen := make(map[int]bool, n)
	values := make([]int, 0, n)
	for len(values) < n {
		v := g.rng.IntN(limit) + 1
		key := strconv.Itoa(v)
		if seenFilter.TestString(key) {
			if seen[v] {
				continue
			}
		} else {
			seenFilter.AddString(key)
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// DefaultText is the Huffman sample used when none is configured.
const DefaultText = "the quick brown fox jumps over the lazy dog"
