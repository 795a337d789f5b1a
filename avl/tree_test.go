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

package avl

import (
	"math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/stretchr/testify/require"

	"github.com/saod-vizual/treeviz/tree"
)

type AVLTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int // In-order traversal expectation after operations
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{1, 2, 3},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Insertion with Balancing (Left-Heavy)",
			InitialKeys:   []int{30},
			KeysToInsert:  []int{20, 10},
			ExpectedOrder: []int{10, 20, 30},
		},
		{
			Name:          "Deletion with Balancing (Right-Heavy)",
			InitialKeys:   []int{30, 20, 10},
			KeysToDelete:  []int{30},
			ExpectedOrder: []int{10, 20},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []int{4, 3},
			KeysToInsert:  []int{5, 2},
			KeysToDelete:  []int{3},
			ExpectedOrder: []int{2, 4, 5},
		},
		{
			Name:          "Duplicates and Absent Deletes",
			InitialKeys:   []int{7, 7, 8},
			KeysToDelete:  []int{100},
			ExpectedOrder: []int{7, 8},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			avl := NewTree()
			for _, key := range tc.InitialKeys {
				avl.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				avl.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				avl.Delete(key)
			}
			require.Equal(t, tc.ExpectedOrder, avl.InOrder())
			require.Equal(t, len(tc.ExpectedOrder), avl.Len())
			verifyBalanced(t, avl.Root())
		})
	}
}

func TestInsertSingleLeftRotation(t *testing.T) {
	avl := NewTree()
	require.Len(t, avl.Insert(10), 1)
	require.Len(t, avl.Insert(20), 1)

	ops := avl.Insert(30)
	require.Len(t, ops, 2)
	require.Equal(t, OpInsert, ops[0].Kind)
	require.Equal(t, 30, ops[0].Value)
	require.Equal(t, Operation{
		Kind:      OpRotate,
		Value:     10,
		Pivot:     10,
		Direction: RotateLeft,
		NewRoot:   20,
		Tree:      ops[1].Tree,
		Message:   ops[1].Message,
	}, ops[1])

	root := avl.Root()
	require.Equal(t, 20, root.Item.Value)
	require.Equal(t, 10, root.Left.Item.Value)
	require.Equal(t, 30, root.Right.Item.Value)
	require.True(t, tree.Equal(root, ops[1].Tree))
}

func TestInsertLeftRightCase(t *testing.T) {
	avl := NewTree()
	avl.Insert(30)
	avl.Insert(10)
	ops := avl.Insert(20)

	var kinds []OpKind
	var dirs []Direction
	for _, op := range ops {
		kinds = append(kinds, op.Kind)
		dirs = append(dirs, op.Direction)
	}
	require.Equal(t, []OpKind{OpInsert, OpRotate, OpRotate}, kinds)
	require.Equal(t, []Direction{"", RotateLeft, RotateRight}, dirs)
	require.Equal(t, 10, ops[1].Pivot)
	require.Equal(t, 30, ops[2].Pivot)
	require.Equal(t, 20, ops[2].NewRoot)
	require.Equal(t, 20, avl.Root().Item.Value)
}

func TestDeleteWithBalancedChild(t *testing.T) {
	avl := NewTree()
	for _, v := range []int{20, 10, 30, 5, 15} {
		avl.Insert(v)
	}
	ops := avl.Delete(30)
	require.Len(t, ops, 2)
	require.Equal(t, OpDelete, ops[0].Kind)
	require.Equal(t, RotateRight, ops[1].Direction)
	require.Equal(t, 10, ops[1].NewRoot)

	root := avl.Root()
	require.Equal(t, 10, root.Item.Value)
	require.Equal(t, 20, root.Right.Item.Value)
	require.Equal(t, 15, root.Right.Left.Item.Value)
	verifyBalanced(t, root)
}

func TestDeleteTwoChildrenUsesSuccessor(t *testing.T) {
	avl := NewTree()
	for _, v := range []int{20, 10, 30, 25, 35} {
		avl.Insert(v)
	}
	ops := avl.Delete(20)
	require.Len(t, ops, 1)
	require.Equal(t, OpDelete, ops[0].Kind)
	require.Equal(t, 25, ops[0].Value)
	require.Equal(t, 25, avl.Root().Item.Value)
	require.Equal(t, []int{10, 25, 30, 35}, avl.InOrder())
	require.False(t, avl.Find(20))
	require.True(t, avl.Find(35))
}

func TestNoOpCallsReturnEmptyLog(t *testing.T) {
	avl := NewTree()
	avl.Insert(1)
	require.Empty(t, avl.Insert(1))
	require.Empty(t, avl.Delete(2))
	require.Empty(t, NewTree().Delete(2))

	require.Empty(t, NewTree().Reset())
}

func TestResetLogsClear(t *testing.T) {
	avl := NewTree()
	for _, v := range []int{5, 3, 8} {
		avl.Insert(v)
	}
	ops := avl.Reset()
	require.Len(t, ops, 1)
	require.Equal(t, OpClear, ops[0].Kind)
	require.Equal(t, 3, ops[0].Value)
	require.Nil(t, ops[0].Tree)
	require.Zero(t, avl.Len())
	require.Nil(t, avl.Root())

	require.Len(t, avl.Insert(4), 1)
	require.Equal(t, []int{4}, avl.InOrder())
}

// Random workload checked against an independent AVL implementation.
func TestRandomWorkloadKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	avl := NewTree()
	oracle := avltree.NewWithIntComparator()

	for i := 0; i < 2000; i++ {
		v := rng.IntN(150)
		var ops []Operation
		if rng.IntN(3) == 0 {
			ops = avl.Delete(v)
			oracle.Remove(v)
		} else {
			ops = avl.Insert(v)
			oracle.Put(v, struct{}{})
		}

		root := avl.Root()
		verifyBalanced(t, root)
		if len(ops) > 0 {
			require.True(t, tree.Equal(root, ops[len(ops)-1].Tree), "op %d: final snapshot differs from live tree", i)
		}

		var want []int
		for _, k := range oracle.Keys() {
			want = append(want, k.(int))
		}
		require.Equal(t, want, avl.InOrder())
		require.Equal(t, oracle.Size(), avl.Len())
		require.Equal(t, contains(want, v), avl.Find(v))
	}
}

func TestSnapshotsAreDeepCopies(t *testing.T) {
	avl := NewTree()
	ops := avl.Insert(1)
	snap := ops[0].Tree
	avl.Insert(2)
	avl.Insert(3)
	require.Equal(t, 1, tree.Size(snap))
	require.Equal(t, Entry{Value: 1, Height: 1}, snap.Item)
}

func verifyBalanced(t *testing.T, root *Node) {
	t.Helper()
	require.True(t, tree.IsSearchTree(root, valueOf))
	tree.PostOrder(root, func(n *Node) {
		l, r := getHeight(n.Left), getHeight(n.Right)
		require.Equal(t, 1+max(l, r), n.Item.Height, "height of %d", n.Item.Value)
		require.LessOrEqual(t, l-r, 1, "balance of %d", n.Item.Value)
		require.GreaterOrEqual(t, l-r, -1, "balance of %d", n.Item.Value)
	})
}

func contains(vs []int, v int) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}
