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

package huffman

import (
	"github.com/google/btree"
)

const queueDegree = 8

// queued is a node waiting to be merged. Leaves get their position in the
// frequency-sorted leaf list as rank; merged nodes get -seq, so among equal
// frequencies the newest merge comes first, then older merges, then leaves in
// their original order.
type queued struct {
	node *Node
	rank int
}

func queuedLess(a, b queued) bool {
	if a.node.Item.Freq != b.node.Item.Freq {
		return a.node.Item.Freq < b.node.Item.Freq
	}
	return a.rank < b.rank
}

// mergeQueue hands out nodes by ascending frequency.
type mergeQueue struct {
	items *btree.BTreeG[queued]
	seq   int
}

func newMergeQueue(leaves []*Node) *mergeQueue {
	q := &mergeQueue{items: btree.NewG(queueDegree, queuedLess)}
	for i, leaf := range leaves {
		q.items.ReplaceOrInsert(queued{node: leaf, rank: i})
	}
	return q
}

func (q *mergeQueue) Len() int { return q.items.Len() }

func (q *mergeQueue) pop() *Node {
	item, _ := q.items.DeleteMin()
	return item.node
}

func (q *mergeQueue) pushMerged(n *Node) {
	q.seq++
	q.items.ReplaceOrInsert(queued{node: n, rank: -q.seq})
}
