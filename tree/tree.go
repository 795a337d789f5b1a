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

// Package tree holds the binary node shared by every tree builder in treeviz
// together with the traversal and copy helpers they have in common.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node carrying an algorithm specific payload.
// A node is owned by exactly one parent (or by the holder of the root).
type Node[T any] struct {
	Item  T
	Left  *Node[T]
	Right *Node[T]
}

// New returns a leaf holding item.
func New[T any](item T) *Node[T] {
	return &Node[T]{Item: item}
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Clone returns a structurally independent deep copy of the subtree at n.
func Clone[T any](n *Node[T]) *Node[T] {
	return CloneFunc(n, func(item T) T { return item })
}

// CloneFunc deep copies the subtree at n, passing every payload through fn.
func CloneFunc[T, U any](n *Node[T], fn func(T) U) *Node[U] {
	if n == nil {
		return nil
	}
	return &Node[U]{
		Item:  fn(n.Item),
		Left:  CloneFunc(n.Left, fn),
		Right: CloneFunc(n.Right, fn),
	}
}

// InOrder visits the subtree at n left, node, right.
func InOrder[T any](n *Node[T], visit func(*Node[T])) {
	if n == nil {
		return
	}
	InOrder(n.Left, visit)
	visit(n)
	InOrder(n.Right, visit)
}

// PreOrder visits the subtree at n node, left, right. depth is 1 for n.
func PreOrder[T any](n *Node[T], visit func(node *Node[T], depth int)) {
	preOrder(n, 1, visit)
}

func preOrder[T any](n *Node[T], depth int, visit func(*Node[T], int)) {
	if n == nil {
		return
	}
	visit(n, depth)
	preOrder(n.Left, depth+1, visit)
	preOrder(n.Right, depth+1, visit)
}

// PostOrder visits the subtree at n left, right, node.
func PostOrder[T any](n *Node[T], visit func(*Node[T])) {
	if n == nil {
		return
	}
	PostOrder(n.Left, visit)
	PostOrder(n.Right, visit)
	visit(n)
}

// Height returns the number of levels below and including n (nil = 0).
func Height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(Height(n.Left), Height(n.Right))
}

// Size returns the number of nodes in the subtree at n.
func Size[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + Size(n.Left) + Size(n.Right)
}

// Items returns the payloads in in-order sequence.
func Items[T any](n *Node[T]) []T {
	var items []T
	InOrder(n, func(node *Node[T]) {
		items = append(items, node.Item)
	})
	return items
}

// Leaves returns the leaf nodes from left to right.
func Leaves[T any](n *Node[T]) []*Node[T] {
	var leaves []*Node[T]
	PreOrder(n, func(node *Node[T], _ int) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	})
	return leaves
}

// Equal reports whether a and b have the same shape and payloads.
func Equal[T comparable](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Item == b.Item && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// Find descends a search tree ordered by key and returns the node holding k.
func Find[T any, K constraints.Ordered](n *Node[T], k K, key func(T) K) *Node[T] {
	for n != nil {
		switch nk := key(n.Item); {
		case k < nk:
			n = n.Left
		case k > nk:
			n = n.Right
		default:
			return n
		}
	}
	return nil
}

// Attach inserts leaf below root following the search order given by key and
// returns the (possibly new) root. Keys equal to a node's key go right.
func Attach[T any, K constraints.Ordered](root, leaf *Node[T], key func(T) K) *Node[T] {
	if root == nil {
		return leaf
	}
	k := key(leaf.Item)
	cur := root
	for {
		if k < key(cur.Item) {
			if cur.Left == nil {
				cur.Left = leaf
				return root
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = leaf
				return root
			}
			cur = cur.Right
		}
	}
}

// IsSearchTree reports whether an in-order walk yields strictly ascending keys.
func IsSearchTree[T any, K constraints.Ordered](n *Node[T], key func(T) K) bool {
	ok, first := true, true
	var prev K
	InOrder(n, func(node *Node[T]) {
		k := key(node.Item)
		if !first && k <= prev {
			ok = false
		}
		prev, first = k, false
	})
	return ok
}
