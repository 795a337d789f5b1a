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

// Package bst builds weighted binary search trees: the statically optimal tree
// from the AW/AP/AR dynamic programme and the nearly optimal A1 and A2 trees,
// the latter two with a step trace for replay.
package bst

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/saod-vizual/treeviz/tree"
)

// ErrInvalidWeight marks input rejected because of a negative weight.
var ErrInvalidWeight = errors.New("invalid weight")

// Item is a key with its search frequency.
type Item struct {
	Key    int
	Weight int
}

// Node is a weighted search tree node.
type Node = tree.Node[Item]

// KeyOf orders Items by key.
func KeyOf(it Item) int { return it.Key }

// Keys returns the keys of the subtree at n in ascending order.
func Keys(n *Node) []int {
	var keys []int
	tree.InOrder(n, func(node *Node) {
		keys = append(keys, node.Item.Key)
	})
	return keys
}

func checkWeight(key, weight int) error {
	if weight < 0 {
		return errors.Mark(errors.Newf("key %d has negative weight %d", key, weight), ErrInvalidWeight)
	}
	return nil
}

// sortedItems validates weights and returns the items ordered by key.
func sortedItems(weights map[int]int) ([]Item, error) {
	items := make([]Item, 0, len(weights))
	for k, w := range weights {
		if err := checkWeight(k, w); err != nil {
			return nil, err
		}
		items = append(items, Item{Key: k, Weight: w})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items, nil
}

// Characteristics are the classic per-tree figures printed next to every
// constructed tree.
type Characteristics struct {
	Size           int
	ControlSum     int     // sum of keys
	Height         int     // levels, root level is 1
	WeightedHeight int     // sum of weight * level
	TotalWeight    int
	AverageHeight  float64 // mean node level
	WeightedMean   float64 // WeightedHeight / TotalWeight
}

// Measure walks the subtree at n once and computes its characteristics.
func Measure(n *Node) Characteristics {
	var c Characteristics
	levels := 0
	tree.PreOrder(n, func(node *Node, level int) {
		c.Size++
		c.ControlSum += node.Item.Key
		c.Height = max(c.Height, level)
		c.WeightedHeight += node.Item.Weight * level
		c.TotalWeight += node.Item.Weight
		levels += level
	})
	if c.Size > 0 {
		c.AverageHeight = float64(levels) / float64(c.Size)
	}
	if c.TotalWeight > 0 {
		c.WeightedMean = float64(c.WeightedHeight) / float64(c.TotalWeight)
	}
	return c
}
