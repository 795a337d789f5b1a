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

package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"

	"github.com/saod-vizual/treeviz/avl"
	"github.com/saod-vizual/treeviz/bst"
	"github.com/saod-vizual/treeviz/huffman"
	"github.com/saod-vizual/treeviz/trace"
	"github.com/saod-vizual/treeviz/tree"
)

const emptyTree = "(empty tree)\n"

// renderTree draws the tree sideways: right subtrees above their parent, left
// subtrees below.
//
//	┌── 30
//	20
//	└── 10
func renderTree[T any](root *tree.Node[T], label func(*tree.Node[T]) string) string {
	if root == nil {
		return emptyTree
	}
	var sb strings.Builder
	if root.Right != nil {
		writeBranch(&sb, root.Right, "", false, label)
	}
	sb.WriteString(label(root))
	sb.WriteByte('\n')
	if root.Left != nil {
		writeBranch(&sb, root.Left, "", true, label)
	}
	return sb.String()
}

func writeBranch[T any](sb *strings.Builder, n *tree.Node[T], prefix string, left bool, label func(*tree.Node[T]) string) {
	if n.Right != nil {
		next := prefix + "    "
		if left {
			next = prefix + "│   "
		}
		writeBranch(sb, n.Right, next, false, label)
	}

	connector := "┌── "
	if left {
		connector = "└── "
	}
	sb.WriteString(prefix)
	sb.WriteString(connector)
	sb.WriteString(label(n))
	sb.WriteByte('\n')

	if n.Left != nil {
		next := prefix + "│   "
		if left {
			next = prefix + "    "
		}
		writeBranch(sb, n.Left, next, true, label)
	}
}

// marker colours a label when key matches one of the step marks.
type marker struct {
	inserted    trace.Mark
	highlighted trace.Mark
	styled      bool
}

func (m marker) apply(key int, label string) string {
	if !m.styled {
		switch {
		case m.inserted.Set && m.inserted.Key == key:
			return "[" + label + "]"
		case m.highlighted.Set && m.highlighted.Key == key:
			return "<" + label + ">"
		}
		return label
	}
	scheme := GetColorScheme()
	switch {
	case m.inserted.Set && m.inserted.Key == key:
		return lipgloss.NewStyle().Foreground(scheme.Inserted).Bold(true).Render(label)
	case m.highlighted.Set && m.highlighted.Key == key:
		return lipgloss.NewStyle().Foreground(scheme.Highlighted).Bold(true).Render(label)
	}
	return label
}

func bstLabel(m marker) func(*bst.Node) string {
	return func(n *bst.Node) string {
		return m.apply(n.Item.Key, fmt.Sprintf("%d (w=%d)", n.Item.Key, n.Item.Weight))
	}
}

func avlLabel(m marker) func(*avl.Node) string {
	return func(n *avl.Node) string {
		return m.apply(n.Item.Value, fmt.Sprintf("%d (h=%d, bf=%d)", n.Item.Value, n.Item.Height, avl.BalanceFactor(n)))
	}
}

func huffmanLabel(n *huffman.Node) string {
	if n.IsLeaf() {
		return fmt.Sprintf("'%s' %d [%s]", huffman.Display(n.Item.Char), n.Item.Freq, n.Item.Code)
	}
	return strconv.Itoa(n.Item.Freq)
}

// renderMatrix writes the upper triangle of an (n+1)x(n+1) DP matrix.
func renderMatrix(w io.Writer, name string, m [][]int) {
	fmt.Fprintf(w, "%s\n", name)
	tbl := tablewriter.NewWriter(w)
	header := []string{""}
	for j := range m {
		header = append(header, strconv.Itoa(j))
	}
	tbl.SetHeader(header)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, row := range m {
		cells := []string{strconv.Itoa(i)}
		for j, v := range row {
			if j < i {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, strconv.Itoa(v))
		}
		tbl.Append(cells)
	}
	tbl.Render()
}

func renderCharacteristics(w io.Writer, c bst.Characteristics) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Size", "Control sum", "Height", "Weighted height", "Avg height", "Weighted mean"})
	tbl.Append([]string{
		strconv.Itoa(c.Size),
		strconv.Itoa(c.ControlSum),
		strconv.Itoa(c.Height),
		strconv.Itoa(c.WeightedHeight),
		fmt.Sprintf("%.2f", c.AverageHeight),
		fmt.Sprintf("%.2f", c.WeightedMean),
	})
	tbl.Render()
}

func renderWeights(w io.Writer, weights map[int]int) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Key", "Weight"})
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, key := range slices.Sorted(maps.Keys(weights)) {
		tbl.Append([]string{strconv.Itoa(key), strconv.Itoa(weights[key])})
	}
	tbl.Render()
}

func renderCodeTable(w io.Writer, res *huffman.Result) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Symbol", "Frequency", "Code", "Length"})
	for _, s := range res.Stats {
		tbl.Append([]string{huffman.Display(s.Char), strconv.Itoa(s.Freq), s.Code, strconv.Itoa(s.Length)})
	}
	tbl.Render()
}

func renderMetrics(w io.Writer, m huffman.Metrics) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Metric", "Value"})
	tbl.Append([]string{"Symbols", strconv.Itoa(m.Symbols)})
	tbl.Append([]string{"Raw bits", strconv.Itoa(m.RawBits)})
	tbl.Append([]string{"Encoded bits", strconv.Itoa(m.EncodedBits)})
	tbl.Append([]string{"Entropy", fmt.Sprintf("%.4f", m.Entropy)})
	tbl.Append([]string{"Average code length", fmt.Sprintf("%.4f", m.AverageLength)})
	tbl.Append([]string{"Redundancy", fmt.Sprintf("%.4f", m.Redundancy)})
	tbl.Append([]string{"Kraft sum", fmt.Sprintf("%.4f", m.KraftSum)})
	tbl.Append([]string{"Compression", fmt.Sprintf("%.2f%%", m.CompressionRatio)})
	tbl.Render()
}

// plotCodeLengths charts code length against symbols in descending frequency.
func plotCodeLengths(res *huffman.Result, height int) string {
	lengths := make([]float64, len(res.Stats))
	for i, s := range res.Stats {
		lengths[i] = float64(s.Length)
	}
	return asciigraph.Plot(lengths,
		asciigraph.Height(height),
		asciigraph.Caption("code length by symbol, most frequent first"))
}
