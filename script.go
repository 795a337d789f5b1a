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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-shellwords"

	"github.com/saod-vizual/treeviz/avl"
	"github.com/saod-vizual/treeviz/demo"
)

// errBadScript marks AVL scripts that cannot be parsed.
var errBadScript = errors.New("invalid avl script")

// maxRandomValue bounds the values drawn by the "random" script command.
const maxRandomValue = 100

type scriptCommand struct {
	Name string
	Args []int
}

var scriptAliases = map[string]string{
	"insert": "insert", "add": "insert", "i": "insert",
	"delete": "delete", "remove": "delete", "d": "delete",
	"find": "find", "search": "find", "f": "find",
	"random": "random",
	"clear":  "clear",
}

// parseScript reads commands separated by ';' or newlines, for example
// "insert 10 20 30; delete 20; find 10".
func parseScript(script string) ([]scriptCommand, error) {
	var cmds []scriptCommand
	for _, segment := range strings.FieldsFunc(script, func(r rune) bool { return r == ';' || r == '\n' }) {
		words, err := splitCommand(segment)
		if err != nil {
			return nil, err
		}
		if len(words) == 0 {
			continue
		}

		name, ok := scriptAliases[strings.ToLower(words[0])]
		if !ok {
			return nil, errors.Mark(errors.Newf("unknown command %q", words[0]), errBadScript)
		}
		cmd := scriptCommand{Name: name}
		for _, w := range words[1:] {
			v, err := strconv.Atoi(w)
			if err != nil {
				return nil, errors.Mark(errors.Newf("%s: %q is not an integer", name, w), errBadScript)
			}
			cmd.Args = append(cmd.Args, v)
		}

		switch {
		case name == "clear" && len(cmd.Args) > 0:
			return nil, errors.Mark(errors.New("clear takes no values"), errBadScript)
		case name == "random" && len(cmd.Args) != 1:
			return nil, errors.Mark(errors.New("random takes exactly one count"), errBadScript)
		case name != "clear" && name != "random" && len(cmd.Args) == 0:
			return nil, errors.Mark(errors.Newf("%s needs at least one value", name), errBadScript)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// splitCommand splits one script command into words.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to parse %q", line), errBadScript)
	}
	return args, nil
}

// runScript applies cmds to t and returns the concatenated operation log along
// with one note per find or no-op command.
func runScript(t *avl.Tree, cmds []scriptCommand, gen *demo.Generator) ([]avl.Operation, []string, error) {
	var ops []avl.Operation
	var notes []string
	for _, cmd := range cmds {
		switch cmd.Name {
		case "insert":
			for _, v := range cmd.Args {
				log := t.Insert(v)
				if len(log) == 0 {
					notes = append(notes, fmt.Sprintf("%d is already in the tree", v))
				}
				ops = append(ops, log...)
			}
		case "delete":
			for _, v := range cmd.Args {
				log := t.Delete(v)
				if len(log) == 0 {
					notes = append(notes, fmt.Sprintf("%d is not in the tree", v))
				}
				ops = append(ops, log...)
			}
		case "find":
			for _, v := range cmd.Args {
				if t.Find(v) {
					notes = append(notes, fmt.Sprintf("%d found", v))
				} else {
					notes = append(notes, fmt.Sprintf("%d not found", v))
				}
			}
		case "random":
			values, err := gen.UniqueValues(cmd.Args[0], maxRandomValue)
			if err != nil {
				return nil, nil, err
			}
			for _, v := range values {
				ops = append(ops, t.Insert(v)...)
			}
		case "clear":
			ops = append(ops, t.Reset()...)
			notes = append(notes, "tree cleared")
		}
	}
	return ops, notes, nil
}
