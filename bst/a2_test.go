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

	"github.com/stretchr/testify/require"

	"github.com/saod-vizual/treeviz/tree"
)

func TestBuildA2FallbackTrace(t *testing.T) {
	res, err := BuildA2(map[int]int{1: 1, 2: 1})
	require.NoError(t, err)

	var actions []A2Action
	for _, s := range res.Steps {
		actions = append(actions, s.Action)
	}
	require.Equal(t, []A2Action{
		A2BuildSubtree, A2CheckRoot, A2CheckRoot, A2FoundRoot, A2CreateRoot,
		A2BuildSubtree, A2CheckRoot, A2FoundRoot, A2CreateRoot,
		A2BuildChildren,
	}, actions)

	found := res.Steps[3]
	require.True(t, found.Fallback)
	require.Equal(t, 2, found.Key)
	require.False(t, res.Steps[7].Fallback)

	require.Equal(t, 2, res.Root.Item.Key)
	require.Equal(t, 1, res.Root.Left.Item.Key)
	require.Nil(t, res.Root.Right)

	children := res.Steps[9]
	require.Equal(t, 1, children.Left.Key)
	require.False(t, children.Right.Set)
}

func TestBuildA2RunningSums(t *testing.T) {
	res, err := BuildA2(map[int]int{1: 1, 2: 1, 3: 1})
	require.NoError(t, err)
	require.Equal(t, 2, res.Root.Item.Key)

	head := res.Steps[0]
	require.Equal(t, A2BuildSubtree, head.Action)
	require.Equal(t, []int{1, 2, 3}, head.Keys)
	require.Equal(t, 3, head.Total)
	require.InDelta(t, 1.5, head.Half, 1e-9)
	require.Nil(t, head.Tree)

	check := res.Steps[2]
	require.Equal(t, A2CheckRoot, check.Action)
	require.Equal(t, 1, check.PrevSum)
	require.Equal(t, 2, check.Sum)
	require.True(t, check.IsRoot)
	require.Equal(t, []int{1, 2}, check.Keys)

	require.Equal(t, A2FoundRoot, res.Steps[3].Action)
	require.Equal(t, A2CreateRoot, res.Steps[4].Action)
	require.Equal(t, 1, tree.Size(res.Steps[4].Tree))
}

func TestBuildA2Bisection(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 5))
	for round := 0; round < 20; round++ {
		weights := map[int]int{}
		count := rng.IntN(60) + 1
		for len(weights) < count {
			weights[rng.IntN(150)+1] = rng.IntN(50) + 1
		}
		res, err := BuildA2(weights)
		require.NoError(t, err)
		require.True(t, tree.IsSearchTree(res.Root, KeyOf))
		require.Equal(t, count, tree.Size(res.Root))
		checkBisection(t, res.Items, res.Root, 0, len(res.Items)-1)

		last := res.Steps[len(res.Steps)-1]
		require.True(t, tree.Equal(res.Root, last.Tree))
	}
}

// checkBisection verifies the root rule on the contiguous range covered by n.
func checkBisection(t *testing.T, items []Item, n *Node, start, end int) {
	t.Helper()
	if n == nil {
		require.Greater(t, start, end)
		return
	}
	idx := start + tree.Size(n.Left)
	require.Equal(t, items[idx], n.Item)

	total, before := 0, 0
	for i := start; i <= end; i++ {
		total += items[i].Weight
		if i < idx {
			before += items[i].Weight
		}
	}
	after := before + n.Item.Weight
	if !(2*before < total && total < 2*after) {
		require.Equal(t, end, idx, "node %d is neither a crossing nor the fallback", n.Item.Key)
		for i, sum := start, 0; i < end; i++ {
			prev := sum
			sum += items[i].Weight
			require.False(t, 2*prev < total && total < 2*sum)
		}
	}
	root, strict := A2Root(items, start, end)
	require.Equal(t, idx, root)
	require.Equal(t, idx != end || 2*before < total && total < 2*after, strict)

	checkBisection(t, items, n.Left, start, idx-1)
	checkBisection(t, items, n.Right, idx+1, end)
}

func TestBuildA2SnapshotsGrow(t *testing.T) {
	res, err := BuildA2(map[int]int{5: 4, 9: 1, 12: 7, 20: 2, 31: 3})
	require.NoError(t, err)

	prev := 0
	for _, s := range res.Steps {
		size := tree.Size(s.Tree)
		require.GreaterOrEqual(t, size, prev)
		if s.Action == A2CreateRoot {
			require.Equal(t, prev+1, size)
			require.NotNil(t, tree.Find(s.Tree, s.Key, KeyOf))
		}
		prev = size
	}
	require.Equal(t, 5, prev)
}
