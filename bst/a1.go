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
	"fmt"
	"sort"

	"github.com/saod-vizual/treeviz/trace"
	"github.com/saod-vizual/treeviz/tree"
)

// A1Action names a step of the A1 builder.
type A1Action string

const (
	A1StartInsert A1Action = "start_insert"
	A1SetRoot     A1Action = "set_root"
	A1GoLeft      A1Action = "go_left"
	A1GoRight     A1Action = "go_right"
	A1InsertLeft  A1Action = "insert_left"
	A1InsertRight A1Action = "insert_right"
)

// A1Step is one entry of an A1 trace.
type A1Step struct {
	Action      A1Action
	Key         int
	Weight      int
	Parent      trace.Mark // node compared against (descent and attach steps)
	Next        trace.Mark // node the descent moves to, unset when it falls off the tree
	Inserted    trace.Mark
	Highlighted trace.Mark
	Tree        *Node
	Message     string
}

func (s A1Step) Tag() string      { return string(s.Action) }
func (s A1Step) Describe() string { return s.Message }

// A1Result is the A1 tree together with its trace.
type A1Result struct {
	Root  *Node
	Order []Item // insertion order
	Steps []A1Step
}

// A1Order returns the items by descending weight, equal weights by ascending key.
func A1Order(weights map[int]int) ([]Item, error) {
	items, err := sortedItems(weights)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Weight > items[j].Weight })
	return items, nil
}

// BuildA1 inserts the keys into a plain search tree heaviest first.
func BuildA1(weights map[int]int) (*A1Result, error) {
	order, err := A1Order(weights)
	if err != nil {
		return nil, err
	}

	var (
		root *Node
		log  trace.Log[A1Step]
	)
	for i, it := range order {
		log.Append(A1Step{
			Action:   A1StartInsert,
			Key:      it.Key,
			Weight:   it.Weight,
			Inserted: trace.MarkOf(it.Key),
			Tree:     tree.Clone(root),
			Message:  fmt.Sprintf("Step %d: inserting key %d with weight %d", i+1, it.Key, it.Weight),
		})

		leaf := tree.New(it)
		if root == nil {
			root = leaf
			log.Append(A1Step{
				Action:   A1SetRoot,
				Key:      it.Key,
				Weight:   it.Weight,
				Inserted: trace.MarkOf(it.Key),
				Tree:     tree.Clone(root),
				Message:  fmt.Sprintf("Key %d becomes the root", it.Key),
			})
			continue
		}

		var parent *Node
		for cur := root; cur != nil; {
			parent = cur
			step := A1Step{
				Key:         it.Key,
				Weight:      it.Weight,
				Parent:      trace.MarkOf(parent.Item.Key),
				Highlighted: trace.MarkOf(parent.Item.Key),
			}
			if it.Key < cur.Item.Key {
				cur = cur.Left
				step.Action = A1GoLeft
				step.Message = fmt.Sprintf("%d < %d, going left", it.Key, parent.Item.Key)
			} else {
				cur = cur.Right
				step.Action = A1GoRight
				step.Message = fmt.Sprintf("%d >= %d, going right", it.Key, parent.Item.Key)
			}
			if cur != nil {
				step.Next = trace.MarkOf(cur.Item.Key)
			}
			step.Tree = tree.Clone(root)
			log.Append(step)
		}

		step := A1Step{
			Key:         it.Key,
			Weight:      it.Weight,
			Parent:      trace.MarkOf(parent.Item.Key),
			Inserted:    trace.MarkOf(it.Key),
			Highlighted: trace.MarkOf(parent.Item.Key),
		}
		if it.Key < parent.Item.Key {
			parent.Left = leaf
			step.Action = A1InsertLeft
			step.Message = fmt.Sprintf("Inserting %d as the left child of %d", it.Key, parent.Item.Key)
		} else {
			parent.Right = leaf
			step.Action = A1InsertRight
			step.Message = fmt.Sprintf("Inserting %d as the right child of %d", it.Key, parent.Item.Key)
		}
		step.Tree = tree.Clone(root)
		log.Append(step)
	}

	return &A1Result{Root: root, Order: order, Steps: log.Entries()}, nil
}
