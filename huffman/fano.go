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
	"sort"

	"github.com/saod-vizual/treeviz/tree"
)

// BuildFano constructs the Shannon-Fano tree of text: symbols sorted by
// descending frequency are split recursively into a left group ('0') and a
// right group ('1') of nearly equal weight.
func BuildFano(text string) (*Result, error) {
	freqs, err := countAlphabet(text)
	if err != nil {
		return nil, err
	}
	symbols := append([]Frequency(nil), freqs...)
	sort.SliceStable(symbols, func(i, j int) bool {
		return symbols[i].Count > symbols[j].Count
	})
	return finish(text, fanoSplit(symbols, 0, len(symbols)-1), freqs), nil
}

// fanoMedian returns the last index of the left group. The right group starts
// as the last symbol and grows leftwards while the left group still weighs at
// least as much.
func fanoMedian(symbols []Frequency, left, right int) int {
	leftSum := 0
	for i := left; i < right; i++ {
		leftSum += symbols[i].Count
	}
	rightSum := symbols[right].Count
	median := right
	for leftSum >= rightSum && median > left {
		median--
		leftSum -= symbols[median].Count
		rightSum += symbols[median].Count
	}
	return median
}

func fanoSplit(symbols []Frequency, left, right int) *Node {
	if left == right {
		return tree.New(Symbol{Char: symbols[left].Char, Freq: symbols[left].Count})
	}
	median := fanoMedian(symbols, left, right)
	if median >= right {
		median = right - 1
	}
	l := fanoSplit(symbols, left, median)
	r := fanoSplit(symbols, median+1, right)
	return &Node{
		Item:  Symbol{Freq: l.Item.Freq + r.Item.Freq},
		Left:  l,
		Right: r,
	}
}
