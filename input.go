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
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/saod-vizual/treeviz/demo"
)

// errBadInput marks command line values that cannot be used.
var errBadInput = errors.New("invalid input")

// parseWeights reads "5 10 3" style arguments; key k gets the k-th weight.
func parseWeights(args []string) ([]int, error) {
	weights := make([]int, 0, len(args))
	for _, a := range args {
		w, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Mark(errors.Newf("weight %q is not an integer", a), errBadInput)
		}
		weights = append(weights, w)
	}
	return weights, nil
}

// parseKeyWeights reads "key:weight" pairs.
func parseKeyWeights(args []string) (map[int]int, error) {
	weights := make(map[int]int, len(args))
	for _, a := range args {
		k, w, ok := strings.Cut(a, ":")
		if !ok {
			return nil, errors.Mark(errors.Newf("%q is not a key:weight pair", a), errBadInput)
		}
		key, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.Mark(errors.Newf("key %q is not an integer", k), errBadInput)
		}
		weight, err := strconv.Atoi(w)
		if err != nil {
			return nil, errors.Mark(errors.Newf("weight %q is not an integer", w), errBadInput)
		}
		if _, dup := weights[key]; dup {
			return nil, errors.Mark(errors.Newf("key %d given twice", key), errBadInput)
		}
		weights[key] = weight
	}
	return weights, nil
}

// checkRange validates a count flag.
func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return errors.Mark(errors.Newf("--%s must be between %d and %d, got %d", name, lo, hi, v), errBadInput)
	}
	return nil
}

// newGenerator seeds demo data from the config; seed 0 means a fresh seed per run.
func newGenerator(cfg *Config) *demo.Generator {
	seed := cfg.Demo.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return demo.New(seed)
}
