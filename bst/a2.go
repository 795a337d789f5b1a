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
	"strings"

	"github.com/saod-vizual/treeviz/trace"
	"github.com/saod-vizual/treeviz/tree"
)

// A2Action names a step of the A2 builder.
type A2Action string

const (
	A2BuildSubtree  A2Action = "build_subtree"
	A2CheckRoot     A2Action = "check_root"
	A2FoundRoot     A2Action = "found_root"
	A2CreateRoot    A2Action = "create_root"
	A2BuildChildren A2Action = "build_children"
)

// A2Step is one entry of an A2 trace. Range fields describe the subtree being
// partitioned; the sums are only filled where the action uses them.
type A2Step struct {
	Action   A2Action
	Round    int // partition number, shared by all steps of one build call
	Depth    int
	Start    int // range bounds, indexes into the key-sorted items
	End      int
	Keys     []int // keys of the range (build_subtree) or the scanned prefix (check_root)
	Total    int
	Half     float64
	Key      int
	Weight   int
	PrevSum  int
	Sum      int
	IsRoot   bool
	Fallback bool // found_root picked the last element because no crossing exists
	Left     trace.Mark
	Right    trace.Mark

	Inserted    trace.Mark
	Highlighted trace.Mark
	Tree        *Node
	Message     string
}

func (s A2Step) Tag() string      { return string(s.Action) }
func (s A2Step) Describe() string { return s.Message }

// A2Result is the A2 tree together with its trace.
type A2Result struct {
	Root  *Node
	Items []Item // sorted by key
	Steps []A2Step
}

type a2Builder struct {
	items []Item
	root  *Node
	log   trace.Log[A2Step]
	round int
}

// BuildA2 builds the tree top-down, choosing as root of every key range the
// element at which the running weight crosses half of the range total.
func BuildA2(weights map[int]int) (*A2Result, error) {
	items, err := sortedItems(weights)
	if err != nil {
		return nil, err
	}
	b := &a2Builder{items: items}
	b.build(0, len(items)-1, 0, &b.root)
	return &A2Result{Root: b.root, Items: items, Steps: b.log.Entries()}, nil
}

// A2Root returns the index in [start, end] chosen as root and whether it was
// found by a strict crossing (prev < total/2 < prev+w).
func A2Root(items []Item, start, end int) (int, bool) {
	total := 0
	for _, it := range items[start : end+1] {
		total += it.Weight
	}
	sum := 0
	for i := start; i <= end; i++ {
		prev := sum
		sum += items[i].Weight
		if crosses(prev, sum, total) {
			return i, true
		}
	}
	return end, false
}

// crosses compares against total/2 without leaving integers.
func crosses(prev, sum, total int) bool {
	return 2*prev < total && total < 2*sum
}

// build places the root of items[start..end] at *link, so the tree reachable
// from b.root is always the partially built result.
func (b *a2Builder) build(start, end, depth int, link **Node) {
	if start > end {
		return
	}
	b.round++
	round := b.round

	rangeKeys := make([]int, 0, end-start+1)
	total := 0
	for _, it := range b.items[start : end+1] {
		rangeKeys = append(rangeKeys, it.Key)
		total += it.Weight
	}
	half := float64(total) / 2

	b.log.Append(A2Step{
		Action:  A2BuildSubtree,
		Round:   round,
		Depth:   depth,
		Start:   start,
		End:     end,
		Keys:    rangeKeys,
		Total:   total,
		Half:    half,
		Tree:    tree.Clone(b.root),
		Message: fmt.Sprintf("[depth %d] building subtree for keys [%s]\nweight sum: %d, half: %.2f", depth, joinInts(rangeKeys), total, half),
	})

	sum := 0
	rootIndex := -1
	for i := start; i <= end; i++ {
		it := b.items[i]
		prev := sum
		sum += it.Weight
		isRoot := crosses(prev, sum, total)

		b.log.Append(A2Step{
			Action:      A2CheckRoot,
			Round:       round,
			Depth:       depth,
			Start:       start,
			End:         end,
			Keys:        append([]int(nil), rangeKeys[:i-start+1]...),
			Total:       total,
			Half:        half,
			Key:         it.Key,
			Weight:      it.Weight,
			PrevSum:     prev,
			Sum:         sum,
			IsRoot:      isRoot,
			Highlighted: trace.MarkOf(it.Key),
			Tree:        tree.Clone(b.root),
			Message:     fmt.Sprintf("checking key %d (weight %d)\nsum before: %d, after: %d\nhalf: %.2f", it.Key, it.Weight, prev, sum, half),
		})

		if isRoot {
			rootIndex = i
			b.log.Append(A2Step{
				Action:   A2FoundRoot,
				Round:    round,
				Depth:    depth,
				Start:    start,
				End:      end,
				Total:    total,
				Half:     half,
				Key:      it.Key,
				Weight:   it.Weight,
				PrevSum:  prev,
				Sum:      sum,
				IsRoot:   true,
				Inserted: trace.MarkOf(it.Key),
				Tree:     tree.Clone(b.root),
				Message:  fmt.Sprintf("root found: %d\n%d < %.2f < %d", it.Key, prev, half, sum),
			})
			break
		}
	}

	if rootIndex < 0 {
		rootIndex = end
		it := b.items[end]
		b.log.Append(A2Step{
			Action:   A2FoundRoot,
			Round:    round,
			Depth:    depth,
			Start:    start,
			End:      end,
			Total:    total,
			Half:     half,
			Key:      it.Key,
			Weight:   it.Weight,
			PrevSum:  sum - it.Weight,
			Sum:      sum,
			IsRoot:   true,
			Fallback: true,
			Inserted: trace.MarkOf(it.Key),
			Tree:     tree.Clone(b.root),
			Message:  fmt.Sprintf("no key crosses %.2f, taking the last key %d", half, it.Key),
		})
	}

	it := b.items[rootIndex]
	node := tree.New(it)
	*link = node

	b.log.Append(A2Step{
		Action:   A2CreateRoot,
		Round:    round,
		Depth:    depth,
		Start:    start,
		End:      end,
		Key:      it.Key,
		Weight:   it.Weight,
		Inserted: trace.MarkOf(it.Key),
		Tree:     tree.Clone(b.root),
		Message:  fmt.Sprintf("creating node %d with weight %d as the subtree root", it.Key, it.Weight),
	})

	b.build(start, rootIndex-1, depth+1, &node.Left)
	b.build(rootIndex+1, end, depth+1, &node.Right)

	if node.IsLeaf() {
		return
	}
	step := A2Step{
		Action:   A2BuildChildren,
		Round:    round,
		Depth:    depth,
		Start:    start,
		End:      end,
		Key:      it.Key,
		Weight:   it.Weight,
		Inserted: trace.MarkOf(it.Key),
		Tree:     tree.Clone(b.root),
	}
	left, right := "none", "none"
	if node.Left != nil {
		step.Left = trace.MarkOf(node.Left.Item.Key)
		left = step.Left.String()
	}
	if node.Right != nil {
		step.Right = trace.MarkOf(node.Right.Item.Key)
		right = step.Right.String()
	}
	step.Message = fmt.Sprintf("children of %d built\nleft: %s, right: %s", it.Key, left, right)
	b.log.Append(step)
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
