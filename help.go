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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Treeviz %s**

Step through classical binary tree algorithms in your terminal: watch every comparison, split and rotation.

Built with Go %s

# 1. Commands
* **optimal** builds the statically optimal search tree and prints the AW, AP and AR matrices
* **a1** inserts keys heaviest first (nearly optimal tree A1)
* **a2** splits every key range at its weight midpoint (nearly optimal tree A2)
* **avl** runs an insert/delete script on an AVL tree, e.g. ` + "`--script \"insert 10 20 30; delete 20\"`" + `
* **huffman** builds Huffman or Shannon-Fano codes for a text
* **play** replays the steps of a1, a2 or avl in an interactive player

# 2. Player keys
* ← / → step, space autoplay, home / end jump, ? help, esc quit

# 3. Input
* Weights come from random demo data unless given as arguments (optimal: ` + "`5 10 3`" + `, a1/a2: ` + "`key:weight`" + ` pairs)
* Demo data sizes, seed and autoplay speed live in ~/.treeviz.yaml (see **treeviz settings**)

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
