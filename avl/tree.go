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

// Package avl is a self-balancing search tree over ints that logs every
// structural change of a call so the change can be replayed.
package avl

import (
	"fmt"

	"github.com/saod-vizual/treeviz/trace"
	"github.com/saod-vizual/treeviz/tree"
)

// Entry is the payload of an AVL node. Height of a leaf is 1.
type Entry struct {
	Value  int
	Height int
}

type Node = tree.Node[Entry]

// OpKind names an operation log entry.
type OpKind string

const (
	OpInsert OpKind = "insert"
	OpRotate OpKind = "rotate"
	OpDelete OpKind = "delete"
	OpClear  OpKind = "clear"
)

// Direction of a single rotation.
type Direction string

const (
	RotateLeft  Direction = "left"
	RotateRight Direction = "right"
)

// Operation is one entry of the log returned by Insert, Delete and Reset.
type Operation struct {
	Kind      OpKind
	Value     int       // inserted or deleted value; clear: values removed
	Pivot     int       // rotate: node the rotation was applied to
	Direction Direction // rotate only
	NewRoot   int       // rotate: root of the rotated subtree
	Tree      *Node     // snapshot after the operation
	Message   string
}

func (o Operation) Tag() string      { return string(o.Kind) }
func (o Operation) Describe() string { return o.Message }

// Tree is an AVL tree of distinct ints. It is not safe for concurrent use.
type Tree struct {
	root *Node
	size int
	ops  trace.Log[Operation]
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

func getHeight(node *Node) int {
	if node == nil {
		return 0
	}
	return node.Item.Height
}

func updateHeight(node *Node) {
	node.Item.Height = max(getHeight(node.Left), getHeight(node.Right)) + 1
}

// BalanceFactor is height(left) - height(right); nil is balanced.
func BalanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	return getHeight(node.Left) - getHeight(node.Right)
}

// record appends an operation with a snapshot of the whole tree. Heights in
// the snapshot are recomputed from its own shape because ancestors above the
// current recursion level are not updated yet.
func (t *Tree) record(op Operation) {
	snap := tree.Clone(t.root)
	tree.PostOrder(snap, updateHeight)
	op.Tree = snap
	t.ops.Append(op)
}

// rotateLeft replaces *link by its right child.
func (t *Tree) rotateLeft(link **Node) {
	node := *link
	pivot := node.Right

	node.Right = pivot.Left
	pivot.Left = node

	updateHeight(node)
	updateHeight(pivot)
	*link = pivot

	t.record(Operation{
		Kind:      OpRotate,
		Value:     node.Item.Value,
		Pivot:     node.Item.Value,
		Direction: RotateLeft,
		NewRoot:   pivot.Item.Value,
		Message:   fmt.Sprintf("left rotation at %d, %d becomes the subtree root", node.Item.Value, pivot.Item.Value),
	})
}

// rotateRight replaces *link by its left child.
func (t *Tree) rotateRight(link **Node) {
	node := *link
	pivot := node.Left

	node.Left = pivot.Right
	pivot.Right = node

	updateHeight(node)
	updateHeight(pivot)
	*link = pivot

	t.record(Operation{
		Kind:      OpRotate,
		Value:     node.Item.Value,
		Pivot:     node.Item.Value,
		Direction: RotateRight,
		NewRoot:   pivot.Item.Value,
		Message:   fmt.Sprintf("right rotation at %d, %d becomes the subtree root", node.Item.Value, pivot.Item.Value),
	})
}

// Insert adds value and returns the log of this call. Duplicates leave the
// tree unchanged and return an empty log.
func (t *Tree) Insert(value int) []Operation {
	t.ops = trace.Log[Operation]{}
	t.insertRecursive(&t.root, value)
	return t.ops.Entries()
}

// insertRecursive reports whether the subtree at *link needs its ancestors
// checked. It turns false once a rotation has restored the old height.
func (t *Tree) insertRecursive(link **Node, value int) bool {
	node := *link
	if node == nil {
		*link = tree.New(Entry{Value: value, Height: 1})
		t.size++
		t.record(Operation{
			Kind:    OpInsert,
			Value:   value,
			Message: fmt.Sprintf("inserted %d", value),
		})
		return true
	}

	var unwind bool
	switch {
	case value < node.Item.Value:
		unwind = t.insertRecursive(&node.Left, value)
	case value > node.Item.Value:
		unwind = t.insertRecursive(&node.Right, value)
	default:
		return false
	}
	if !unwind {
		return false
	}

	updateHeight(node)

	balanceFactor := BalanceFactor(node)
	if balanceFactor > 1 {
		if BalanceFactor(node.Left) > 0 {
			t.rotateRight(link)
		} else {
			// Left-Right case
			t.rotateLeft(&node.Left)
			t.rotateRight(link)
		}
		return false
	} else if balanceFactor < -1 {
		if BalanceFactor(node.Right) < 0 {
			t.rotateLeft(link)
		} else {
			// Right-Left case
			t.rotateRight(&node.Right)
			t.rotateLeft(link)
		}
		return false
	}

	return true
}

// Delete removes value and returns the log of this call. Absent values
// return an empty log.
func (t *Tree) Delete(value int) []Operation {
	t.ops = trace.Log[Operation]{}
	t.deleteRecursive(&t.root, value)
	return t.ops.Entries()
}

func (t *Tree) deleteRecursive(link **Node, value int) {
	node := *link
	if node == nil {
		return // Key not found
	}

	if value < node.Item.Value {
		t.deleteRecursive(&node.Left, value)
	} else if value > node.Item.Value {
		t.deleteRecursive(&node.Right, value)
	} else {
		if node.Left == nil || node.Right == nil {
			// Zero or one child: splice it out
			if node.Left != nil {
				*link = node.Left
			} else {
				*link = node.Right
			}
			t.size--
			t.record(Operation{
				Kind:    OpDelete,
				Value:   value,
				Message: fmt.Sprintf("removed %d", value),
			})
			if *link == nil {
				return
			}
		} else {
			// Two children: take the in-order successor's value
			pivot := t.findMin(node.Right)
			node.Item.Value = pivot.Item.Value
			t.deleteRecursive(&node.Right, pivot.Item.Value)
		}
	}

	updateHeight(*link)
	t.rebalance(link)
}

func (t *Tree) findMin(node *Node) *Node {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

// rebalance fixes *link after a deletion. A child with balance 0 is legal
// here, so it is handled by the single rotation.
func (t *Tree) rebalance(link **Node) {
	node := *link
	balanceFactor := BalanceFactor(node)

	// Left-heavy
	if balanceFactor > 1 {
		if BalanceFactor(node.Left) >= 0 {
			t.rotateRight(link)
		} else {
			t.rotateLeft(&node.Left)
			t.rotateRight(link)
		}
		return
	}

	// Right-heavy
	if balanceFactor < -1 {
		if BalanceFactor(node.Right) <= 0 {
			t.rotateLeft(link)
		} else {
			t.rotateRight(&node.Right)
			t.rotateLeft(link)
		}
	}
}

// Find reports whether value is stored in the tree.
func (t *Tree) Find(value int) bool {
	return tree.Find(t.root, value, valueOf) != nil
}

// InOrder returns the stored values in ascending order.
func (t *Tree) InOrder() []int {
	var values []int
	tree.InOrder(t.root, func(n *Node) {
		values = append(values, n.Item.Value)
	})
	return values
}

// Root returns a deep copy of the current tree.
func (t *Tree) Root() *Node {
	return tree.Clone(t.root)
}

// Len returns the number of stored values.
func (t *Tree) Len() int {
	return t.size
}

// Reset empties the tree and returns a single clear entry. An empty tree
// returns an empty log.
func (t *Tree) Reset() []Operation {
	t.ops = trace.Log[Operation]{}
	if t.root == nil {
		return nil
	}
	removed := t.size
	t.root = nil
	t.size = 0
	t.record(Operation{
		Kind:    OpClear,
		Value:   removed,
		Message: fmt.Sprintf("cleared %d values", removed),
	})
	return t.ops.Entries()
}

func valueOf(e Entry) int { return e.Value }
