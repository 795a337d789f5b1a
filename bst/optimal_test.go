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

package bst

import (
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/saod-vizual/treeviz/tree"
)

func TestBuildOptimalHeaviestKeyAtRoot(t *testing.T) {
	res, err := BuildOptimal([]int{5, 10, 3})
	require.NoError(t, err)
	require.Equal(t, 2, res.Root.Item.Key)
	require.Equal(t, 1, res.Root.Left.Item.Key)
	require.Equal(t, 3, res.Root.Right.Item.Key)
	require.Equal(t, 26, res.Cost())
	require.Equal(t, 18, res.AW[0][3])
	require.Equal(t, 2, res.AR[0][3])
}

func TestBuildOptimalEmpty(t *testing.T) {
	res, err := BuildOptimal(nil)
	require.NoError(t, err)
	require.Nil(t, res.Root)
	require.Equal(t, 0, res.Cost())
	require.Len(t, res.AW, 1)
}

func TestBuildOptimalRejectsNegativeWeight(t *testing.T) {
	_, err := BuildOptimal([]int{4, -1, 2})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidWeight))
}

func TestBuildOptimalMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for n := 1; n <= 7; n++ {
		for round := 0; round < 5; round++ {
			weights := make([]int, n)
			for i := range weights {
				weights[i] = rng.IntN(100) + 1
			}
			res, err := BuildOptimal(weights)
			require.NoError(t, err)

			best := -1
			for _, shape := range allShapes(1, n, weights) {
				if c := Measure(shape).WeightedHeight; best < 0 || c < best {
					best = c
				}
			}
			require.Equal(t, best, res.Cost(), "weights %v", weights)
			require.Equal(t, res.Cost(), Measure(res.Root).WeightedHeight, "weights %v", weights)
			require.True(t, tree.IsSearchTree(res.Root, KeyOf))
			require.Equal(t, n, tree.Size(res.Root))
		}
	}
}

func TestBuildOptimalInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	weights := make([]int, 40)
	for i := range weights {
		weights[i] = rng.IntN(100) + 1
	}
	res, err := BuildOptimal(weights)
	require.NoError(t, err)

	n := len(weights)
	for i := 0; i <= n; i++ {
		require.Equal(t, 0, res.AP[i][i])
		if i < n {
			require.Equal(t, i+1, res.AR[i][i+1])
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j <= n; j++ {
			require.LessOrEqual(t, res.AR[i][j-1], res.AR[i][j], "AR[%d][%d]", i, j)
			require.LessOrEqual(t, res.AR[i][j], res.AR[i+1][j], "AR[%d][%d]", i, j)
		}
	}
	var want []int
	for k := 1; k <= n; k++ {
		want = append(want, k)
	}
	require.Equal(t, want, Keys(res.Root))
}

// allShapes enumerates every search tree over keys lo..hi.
func allShapes(lo, hi int, weights []int) []*Node {
	if lo > hi {
		return []*Node{nil}
	}
	var out []*Node
	for k := lo; k <= hi; k++ {
		for _, l := range allShapes(lo, k-1, weights) {
			for _, r := range allShapes(k+1, hi, weights) {
				out = append(out, &Node{Item: Item{Key: k, Weight: weights[k-1]}, Left: l, Right: r})
			}
		}
	}
	return out
}

func TestMeasure(t *testing.T) {
	root := &Node{
		Item:  Item{Key: 2, Weight: 10},
		Left:  tree.New(Item{Key: 1, Weight: 5}),
		Right: &Node{
			Item: Item{Key: 4, Weight: 1},
			Left: tree.New(Item{Key: 3, Weight: 2}),
		},
	}
	c := Measure(root)
	require.Equal(t, 4, c.Size)
	require.Equal(t, 10, c.ControlSum)
	require.Equal(t, 3, c.Height)
	require.Equal(t, 10+5*2+1*2+2*3, c.WeightedHeight)
	require.Equal(t, 18, c.TotalWeight)
	require.InDelta(t, 2.0, c.AverageHeight, 1e-9)
	require.InDelta(t, 28.0/18.0, c.WeightedMean, 1e-9)

	require.Equal(t, Characteristics{}, Measure(nil))
}
