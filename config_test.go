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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg, err := loadConfigFile(filepath.Join(dir, "absent.yaml"))
		require.NoError(t, err)
		require.Equal(t, defaultConfig, *cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("playback:\n  interval_ms: 250\ndemo:\n  seed: 42\n"), 0644))

		cfg, err := loadConfigFile(path)
		require.NoError(t, err)
		require.Equal(t, 250*time.Millisecond, cfg.Interval())
		require.Equal(t, uint64(42), cfg.Demo.Seed)
		require.Equal(t, defaultConfig.Demo.OptimalNodes, cfg.Demo.OptimalNodes)
		require.Equal(t, defaultConfig.Huffman.SampleText, cfg.Huffman.SampleText)
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("playback: [\n"), 0644))

		cfg, err := loadConfigFile(path)
		require.Error(t, err)
		require.Equal(t, defaultConfig, *cfg)
	})

	t.Run("out of range values", func(t *testing.T) {
		path := filepath.Join(dir, "range.yaml")
		require.NoError(t, os.WriteFile(path, []byte("demo:\n  optimal_nodes: 50\n  nearopt_nodes: 7\n"), 0644))

		cfg, err := loadConfigFile(path)
		require.Error(t, err)
		require.Equal(t, defaultConfig.Demo.OptimalNodes, cfg.Demo.OptimalNodes)
		require.Equal(t, 7, cfg.Demo.NearOptNodes)
	})
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, writeConfigFile(path, &defaultConfig))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, defaultConfig, *cfg)
}
