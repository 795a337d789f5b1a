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
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/saod-vizual/treeviz/huffman"
)

const (
	// Code trees for texts typed into the player
	codeCacheExpiration = 10 * time.Minute
	codeCacheCleanup    = 2 * time.Minute
)

// codeKind selects the tree builder.
type codeKind string

const (
	codeHuffman codeKind = "huffman"
	codeFano    codeKind = "fano"
)

// NewCodeCache creates a cache for finished code trees keyed by text.
func NewCodeCache() *cache.Cache {
	return cache.New(codeCacheExpiration, codeCacheCleanup)
}

func codeCacheKey(kind codeKind, text string) string {
	return string(kind) + "\x00" + text
}

func CacheCode(c *cache.Cache, kind codeKind, text string, res *huffman.Result) {
	c.Set(codeCacheKey(kind, text), res, codeCacheExpiration)
}

func GetCode(c *cache.Cache, kind codeKind, text string) *huffman.Result {
	val, ok := c.Get(codeCacheKey(kind, text))
	if !ok {
		return nil
	}
	return val.(*huffman.Result)
}

// GetOrBuildCode returns the cached tree for text or builds and caches it.
// Failed builds are not cached.
func GetOrBuildCode(c *cache.Cache, kind codeKind, text string) (*huffman.Result, error) {
	if res := GetCode(c, kind, text); res != nil {
		return res, nil
	}
	build := huffman.Build
	if kind == codeFano {
		build = huffman.BuildFano
	}
	res, err := build(text)
	if err != nil {
		return nil, err
	}
	CacheCode(c, kind, text, res)
	return res, nil
}
