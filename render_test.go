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
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/saod-vizual/treeviz/avl"
	"github.com/saod-vizual/treeviz/bst"
	"github.com/saod-vizual/treeviz/huffman"
	"github.com/saod-vizual/treeviz/trace"
)

func TestRenderTree(t *testing.T) {
	tr := avl.NewTree()
	for _, v := range []int{20, 10, 30, 25} {
		tr.Insert(v)
	}
	got := renderTree(tr.Root(), func(n *avl.Node) string { return strconv.Itoa(n.Item.Value) })
	want := "" +
		"┌── 30\n" +
		"│   └── 25\n" +
		"20\n" +
		"└── 10\n"
	require.Equal(t, want, got)

	require.Equal(t, emptyTree, renderTree[bst.Item](nil, bstLabel(marker{})))
}

func TestMarkerPlain(t *testing.T) {
	m := marker{inserted: trace.MarkOf(3), highlighted: trace.MarkOf(5)}
	require.Equal(t, "[3]", m.apply(3, "3"))
	require.Equal(t, "<5>", m.apply(5, "5"))
	require.Equal(t, "7", m.apply(7, "7"))
}

func TestRenderMatrixUpperTriangle(t *testing.T) {
	res, err := bst.BuildOptimal([]int{5, 10, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	renderMatrix(&buf, "AW", res.AW)
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "AW\n"))
	require.Contains(t, out, "18")
}

func TestA1FramesFollowTrace(t *testing.T) {
	res, err := bst.BuildA1(map[int]int{1: 5, 2: 10, 3: 3})
	require.NoError(t, err)

	frames := a1Frames(res, false)
	require.Len(t, frames, len(res.Steps))
	for i, f := range frames {
		require.Equal(t, string(res.Steps[i].Action), f.Tag)
		require.Equal(t, res.Steps[i].Message, f.Message)
	}
	// The set_root step marks the new root as inserted.
	require.Equal(t, "[2 (w=10)]\n", frames[1].Tree)
}

func TestAVLFramesMarkRotations(t *testing.T) {
	tr := avl.NewTree()
	var ops []avl.Operation
	for _, v := range []int{10, 20, 30} {
		ops = append(ops, tr.Insert(v)...)
	}
	frames := avlFrames(ops, false)
	require.Len(t, frames, 4)
	require.Equal(t, "rotate", frames[3].Tag)
	require.Contains(t, frames[3].Tree, "<20 (h=2, bf=0)>")
	require.Equal(t, "4. rotate", frames[3].title(3))
}

func TestAVLFramesShowClear(t *testing.T) {
	tr := avl.NewTree()
	var ops []avl.Operation
	ops = append(ops, tr.Insert(1)...)
	ops = append(ops, tr.Reset()...)
	frames := avlFrames(ops, false)
	require.Len(t, frames, 2)
	require.Equal(t, "clear", frames[1].Tag)
	require.Equal(t, "cleared 1 values", frames[1].Message)
	require.Equal(t, emptyTree, frames[1].Tree)
}

func TestPlayPlainWritesEveryFrame(t *testing.T) {
	res, err := bst.BuildA2(map[int]int{1: 1, 2: 1})
	require.NoError(t, err)
	frames := a2Frames(res, false)

	var buf bytes.Buffer
	require.NoError(t, playPlain(context.Background(), &buf, frames, time.Millisecond, false))
	require.Equal(t, len(frames), strings.Count(buf.String(), "\n── "))
	require.Contains(t, buf.String(), "10. build_children")
}

func TestPlotCodeLengths(t *testing.T) {
	res, err := huffman.Build("aaaaaaaaaabbbbbccccc")
	require.NoError(t, err)
	require.Contains(t, plotCodeLengths(res, 5), "code length by symbol")
}
