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
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/saod-vizual/treeviz/demo"
)

const configFileName = ".treeviz.yaml"

type PlaybackConfig struct {
	IntervalMS int  `yaml:"interval_ms"`
	Autoplay   bool `yaml:"autoplay"`
}

type DemoConfig struct {
	OptimalNodes int    `yaml:"optimal_nodes"`
	NearOptNodes int    `yaml:"nearopt_nodes"`
	Seed         uint64 `yaml:"seed"`
}

type HuffmanConfig struct {
	SampleText string `yaml:"sample_text"`
}

type Config struct {
	Playback PlaybackConfig `yaml:"playback"`
	Demo     DemoConfig     `yaml:"demo"`
	Huffman  HuffmanConfig  `yaml:"huffman"`
}

var defaultConfig = Config{
	Playback: PlaybackConfig{
		IntervalMS: 1000,
		Autoplay:   false,
	},
	Demo: DemoConfig{
		OptimalNodes: 10,
		NearOptNodes: 10,
		Seed:         0,
	},
	Huffman: HuffmanConfig{
		SampleText: demo.DefaultText,
	},
}

// Interval is the delay between two steps during autoplay.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Playback.IntervalMS) * time.Millisecond
}

// validate replaces out-of-range values by their defaults and reports what it
// replaced.
func (c *Config) validate() []string {
	var fixed []string
	if c.Playback.IntervalMS <= 0 {
		fixed = append(fixed, fmt.Sprintf("playback.interval_ms=%d", c.Playback.IntervalMS))
		c.Playback.IntervalMS = defaultConfig.Playback.IntervalMS
	}
	if c.Demo.OptimalNodes < 3 || c.Demo.OptimalNodes > demo.MaxOptimalNodes {
		fixed = append(fixed, fmt.Sprintf("demo.optimal_nodes=%d", c.Demo.OptimalNodes))
		c.Demo.OptimalNodes = defaultConfig.Demo.OptimalNodes
	}
	if c.Demo.NearOptNodes < 1 || c.Demo.NearOptNodes > demo.MaxNearOptNodes {
		fixed = append(fixed, fmt.Sprintf("demo.nearopt_nodes=%d", c.Demo.NearOptNodes))
		c.Demo.NearOptNodes = defaultConfig.Demo.NearOptNodes
	}
	if c.Huffman.SampleText == "" {
		c.Huffman.SampleText = defaultConfig.Huffman.SampleText
	}
	return fixed
}

// LoadConfig reads ~/.treeviz.yaml. A missing or unreadable file yields the
// defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFile(configPath)
}

func loadConfigFile(configPath string) (*Config, error) {
	cfg := defaultConfig

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		cfg = defaultConfig
		return &cfg, errors.Wrapf(err, "failed to parse %s", configPath)
	}

	if fixed := cfg.validate(); len(fixed) > 0 {
		return &cfg, errors.Newf("out of range values replaced by defaults: %v", fixed)
	}
	return &cfg, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(configPath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return errors.Wrap(err, "failed to get config path")
	}
	return writeConfigFile(configPath, &defaultConfig)
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("⚠️  %v\n\n", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Treeviz Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("▶️  %sPlayback:%s\n", Green, Reset)
	fmt.Printf("  • %sinterval_ms%s: %d\n", Green, Reset, config.Playback.IntervalMS)
	fmt.Printf("  • %sautoplay%s: %t\n\n", Green, Reset, config.Playback.Autoplay)

	fmt.Printf("🎲 %sDemo data:%s\n", Green, Reset)
	fmt.Printf("  • %soptimal_nodes%s: %d (3-%d)\n", Green, Reset, config.Demo.OptimalNodes, demo.MaxOptimalNodes)
	fmt.Printf("  • %snearopt_nodes%s: %d (1-%d)\n", Green, Reset, config.Demo.NearOptNodes, demo.MaxNearOptNodes)
	if config.Demo.Seed == 0 {
		fmt.Printf("  • %sseed%s: 0 (new data on every run)\n\n", Green, Reset)
	} else {
		fmt.Printf("  • %sseed%s: %d\n\n", Green, Reset, config.Demo.Seed)
	}

	fmt.Printf("🌳 %sHuffman:%s\n", Green, Reset)
	fmt.Printf("  • %ssample_text%s: %q\n\n", Green, Reset, config.Huffman.SampleText)

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
}
