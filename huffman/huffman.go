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

// Package huffman builds prefix-code trees (Huffman and Shannon-Fano) from
// the symbol frequencies of a text and encodes or decodes with them.
package huffman

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/saod-vizual/treeviz/tree"
)

var (
	// ErrInsufficientAlphabet is returned when the text has fewer than two
	// distinct symbols, so no binary code exists. Text made only of
	// whitespace counts as blank and is rejected too, even when it mixes
	// several whitespace symbols such as " \n".
	ErrInsufficientAlphabet = errors.New("at least two distinct symbols are required")
	// ErrInvalidText is returned for text that is not valid UTF-8.
	ErrInvalidText = errors.New("text is not valid UTF-8")
	// ErrInvalidCode is returned by Decode for bit strings the tree cannot read.
	ErrInvalidCode = errors.New("invalid code")
)

// Symbol is the payload of a code tree node. Internal nodes have Char 0 and
// are recognised by having children.
type Symbol struct {
	Char rune
	Freq int
	Code string
}

type Node = tree.Node[Symbol]

// Frequency is the count of one symbol.
type Frequency struct {
	Char  rune
	Count int
}

// Stat is one row of the code table.
type Stat struct {
	Char   rune
	Freq   int
	Code   string
	Length int
}

// Result is a finished code tree.
type Result struct {
	Text        string
	Root        *Node
	Table       map[rune]string
	Stats       []Stat      // descending frequency
	Frequencies []Frequency // first-appearance order
}

// Count returns the symbol frequencies of text in first-appearance order.
func Count(text string) []Frequency {
	index := map[rune]int{}
	var freqs []Frequency
	for _, r := range text {
		i, ok := index[r]
		if !ok {
			i = len(freqs)
			index[r] = i
			freqs = append(freqs, Frequency{Char: r})
		}
		freqs[i].Count++
	}
	return freqs
}

func countAlphabet(text string) ([]Frequency, error) {
	if !utf8.ValidString(text) {
		return nil, errors.Wrapf(ErrInvalidText, "%q", text)
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.Wrap(ErrInsufficientAlphabet, "blank text")
	}
	freqs := Count(text)
	if len(freqs) < 2 {
		return nil, errors.Wrapf(ErrInsufficientAlphabet, "text has %d distinct symbol(s)", len(freqs))
	}
	return freqs, nil
}

// Build constructs the Huffman tree of text. The two least frequent nodes are
// merged repeatedly, the first popped becoming the left child.
func Build(text string) (*Result, error) {
	freqs, err := countAlphabet(text)
	if err != nil {
		return nil, err
	}

	leaves := make([]*Node, len(freqs))
	for i, f := range freqs {
		leaves[i] = tree.New(Symbol{Char: f.Char, Freq: f.Count})
	}
	sort.SliceStable(leaves, func(i, j int) bool {
		return leaves[i].Item.Freq < leaves[j].Item.Freq
	})

	q := newMergeQueue(leaves)
	for q.Len() > 1 {
		left := q.pop()
		right := q.pop()
		q.pushMerged(&Node{
			Item:  Symbol{Freq: left.Item.Freq + right.Item.Freq},
			Left:  left,
			Right: right,
		})
	}

	return finish(text, q.pop(), freqs), nil
}

// finish assigns codes and collects the tables shared by both builders.
func finish(text string, root *Node, freqs []Frequency) *Result {
	assignCodes(root, "")

	res := &Result{
		Text:        text,
		Root:        root,
		Table:       make(map[rune]string, len(freqs)),
		Frequencies: freqs,
	}
	for _, leaf := range tree.Leaves(root) {
		res.Table[leaf.Item.Char] = leaf.Item.Code
		res.Stats = append(res.Stats, Stat{
			Char:   leaf.Item.Char,
			Freq:   leaf.Item.Freq,
			Code:   leaf.Item.Code,
			Length: len(leaf.Item.Code),
		})
	}
	sort.SliceStable(res.Stats, func(i, j int) bool {
		return res.Stats[i].Freq > res.Stats[j].Freq
	})
	return res
}

func assignCodes(n *Node, code string) {
	if n == nil {
		return
	}
	n.Item.Code = code
	assignCodes(n.Left, code+"0")
	assignCodes(n.Right, code+"1")
}

// Encode concatenates the codes of text's symbols. Symbols missing from the
// table are skipped.
func Encode(text string, table map[rune]string) string {
	var sb strings.Builder
	for _, r := range text {
		if code, ok := table[r]; ok {
			sb.WriteString(code)
		}
	}
	return sb.String()
}

// Decode reads bits by walking from root, '0' to the left and '1' to the right.
func Decode(bits string, root *Node) (string, error) {
	if bits == "" {
		return "", nil
	}
	if root == nil || root.IsLeaf() {
		return "", errors.Wrap(ErrInvalidCode, "tree has no branches")
	}

	var sb strings.Builder
	n := root
	for i, b := range bits {
		switch b {
		case '0':
			n = n.Left
		case '1':
			n = n.Right
		default:
			return "", errors.Wrapf(ErrInvalidCode, "bit %d is %q", i, b)
		}
		if n == nil {
			return "", errors.Wrapf(ErrInvalidCode, "bit %d leaves the tree", i)
		}
		if n.IsLeaf() {
			sb.WriteRune(n.Item.Char)
			n = root
		}
	}
	if n != root {
		return "", errors.Wrap(ErrInvalidCode, "trailing bits do not end on a symbol")
	}
	return sb.String(), nil
}

// Display renders whitespace symbols visibly for tables.
func Display(r rune) string {
	switch r {
	case ' ':
		return "␣"
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	}
	return string(r)
}
