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

	"github.com/saod-vizual/treeviz/avl"
	"github.com/saod-vizual/treeviz/bst"
	"github.com/saod-vizual/treeviz/trace"
)

// frame is one rendered step handed to the players.
type frame struct {
	Tag     string
	Message string
	Tree    string
}

// framesOf renders a trace; snapshot draws the tree carried by a step.
func framesOf[E trace.Entry](steps []E, snapshot func(E) string) []frame {
	frames := make([]frame, len(steps))
	for i, s := range steps {
		frames[i] = frame{Tag: s.Tag(), Message: s.Describe(), Tree: snapshot(s)}
	}
	return frames
}

func a1Frames(res *bst.A1Result, styled bool) []frame {
	return framesOf(res.Steps, func(s bst.A1Step) string {
		m := marker{inserted: s.Inserted, highlighted: s.Highlighted, styled: styled}
		return renderTree(s.Tree, bstLabel(m))
	})
}

func a2Frames(res *bst.A2Result, styled bool) []frame {
	return framesOf(res.Steps, func(s bst.A2Step) string {
		m := marker{inserted: s.Inserted, highlighted: s.Highlighted, styled: styled}
		return renderTree(s.Tree, bstLabel(m))
	})
}

func avlFrames(ops []avl.Operation, styled bool) []frame {
	return framesOf(ops, func(op avl.Operation) string {
		m := marker{styled: styled}
		switch op.Kind {
		case avl.OpInsert:
			m.inserted = trace.MarkOf(op.Value)
		case avl.OpRotate:
			m.highlighted = trace.MarkOf(op.NewRoot)
		}
		return renderTree(op.Tree, avlLabel(m))
	})
}

func (f frame) title(i int) string {
	return fmt.Sprintf("%d. %s", i+1, f.Tag)
}
