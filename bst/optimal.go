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

// OptimalResult is the statically optimal tree with the matrices it was
// derived from. Only cells with row <= col are meaningful.
type OptimalResult struct {
	Root    *Node
	Weights []int
	AW      [][]int // AW[i][j]: total weight of keys i+1..j
	AP      [][]int // AP[i][j]: minimal weighted cost of keys i+1..j
	AR      [][]int // AR[i][j]: root key chosen for keys i+1..j
}

// Cost is the weighted path length of the whole tree (root depth 1).
func (r *OptimalResult) Cost() int {
	return r.AP[0][len(r.Weights)]
}

// BuildOptimal builds the optimal search tree for keys 1..n where key k has
// weight weights[k-1]. Root candidates for keys i+1..j are limited to
// [AR[i][j-1], AR[i+1][j]], which keeps the whole table quadratic.
func BuildOptimal(weights []int) (*OptimalResult, error) {
	for i, w := range weights {
		if err := checkWeight(i+1, w); err != nil {
			return nil, err
		}
	}

	n := len(weights)
	aw, ap, ar := square(n+1), square(n+1), square(n+1)

	for i := 0; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			aw[i][j] = aw[i][j-1] + weights[j-1]
		}
	}

	for i := 0; i < n; i++ {
		j := i + 1
		ap[i][j] = aw[i][j]
		ar[i][j] = j
	}

	for h := 2; h <= n; h++ {
		for i := 0; i <= n-h; i++ {
			j := i + h
			m := ar[i][j-1]
			minCost := ap[i][m-1] + ap[m][j]
			for k := m + 1; k <= ar[i+1][j]; k++ {
				if cost := ap[i][k-1] + ap[k][j]; cost < minCost {
					m, minCost = k, cost
				}
			}
			ap[i][j] = minCost + aw[i][j]
			ar[i][j] = m
		}
	}

	res := &OptimalResult{Weights: append([]int(nil), weights...), AW: aw, AP: ap, AR: ar}
	res.Root = res.subtree(0, n)
	return res, nil
}

func (r *OptimalResult) subtree(l, rr int) *Node {
	if l >= rr {
		return nil
	}
	k := r.AR[l][rr]
	return &Node{
		Item:  Item{Key: k, Weight: r.Weights[k-1]},
		Left:  r.subtree(l, k-1),
		Right: r.subtree(k, rr),
	}
}

func square(n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}
