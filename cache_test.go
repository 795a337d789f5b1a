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
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/patrickmn/go-cache"

	"github.com/saod-vizual/treeviz/huffman"
)

func TestCacheCodeAndGetCode(t *testing.T) {
	c := NewCodeCache()
	text := "abracadabra"

	// Initially, GetCode should return nil for a text never built.
	if got := GetCode(c, codeHuffman, text); got != nil {
		t.Errorf("GetCode(%q) = %v; want nil", text, got)
	}

	first, err := GetOrBuildCode(c, codeHuffman, text)
	if err != nil {
		t.Fatalf("GetOrBuildCode(%q) returned error: %v", text, err)
	}

	// The second call must hand back the cached tree, not a rebuild.
	second, err := GetOrBuildCode(c, codeHuffman, text)
	if err != nil {
		t.Fatalf("GetOrBuildCode(%q) returned error: %v", text, err)
	}
	if first != second {
		t.Errorf("GetOrBuildCode(%q) rebuilt a cached tree", text)
	}

	// Fano trees live under their own key.
	if got := GetCode(c, codeFano, text); got != nil {
		t.Errorf("GetCode(fano, %q) = %v; want nil", text, got)
	}
}

func TestGetOrBuildCodeDoesNotCacheFailures(t *testing.T) {
	c := NewCodeCache()
	_, err := GetOrBuildCode(c, codeHuffman, "a")
	if !errors.Is(err, huffman.ErrInsufficientAlphabet) {
		t.Fatalf("GetOrBuildCode(%q) error = %v; want ErrInsufficientAlphabet", "a", err)
	}
	if c.ItemCount() != 0 {
		t.Errorf("failed build was cached: %d items", c.ItemCount())
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	text := "expiring text"

	res, err := huffman.Build(text)
	if err != nil {
		t.Fatalf("Build(%q) returned error: %v", text, err)
	}
	c.Set(codeCacheKey(codeHuffman, text), res, 100*time.Millisecond)

	// Immediately after caching, the tree should be retrievable.
	if got := GetCode(c, codeHuffman, text); got != res {
		t.Errorf("GetCode(%q) = %v; want cached tree", text, got)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got := GetCode(c, codeHuffman, text); got != nil {
		t.Errorf("After expiration, GetCode(%q) = %v; want nil", text, got)
	}
}
