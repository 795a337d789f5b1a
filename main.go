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
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/saod-vizual/treeviz/avl"
	"github.com/saod-vizual/treeviz/bst"
	"github.com/saod-vizual/treeviz/demo"
	"github.com/saod-vizual/treeviz/huffman"
)

var version = "0.1.0"

func main() {
	asciiLogo := `
████████╗██████╗ ███████╗███████╗██╗   ██╗██╗███████╗
╚══██╔══╝██╔══██╗██╔════╝██╔════╝██║   ██║██║╚══███╔╝
   ██║   ██████╔╝█████╗  █████╗  ██║   ██║██║  ███╔╝
   ██║   ██╔══██╗██╔══╝  ██╔══╝  ╚██╗ ██╔╝██║ ███╔╝
   ██║   ██║  ██║███████╗███████╗ ╚████╔╝ ██║███████╗
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝  ╚═══╝  ╚═╝╚══════╝
Step-by-step binary tree algorithms in the terminal [Version: %s%s%s]

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	var cmdOptimal = &cobra.Command{
		Use:   "optimal [weight...]",
		Short: "Build the statically optimal search tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Optimal builds the weighted optimal search tree for keys 1..n with the AW/AP/AR dynamic programme`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			nodes, _ := cmd.Flags().GetInt("nodes")
			weights, err := optimalInput(args, nodes, config)
			if err != nil {
				log.Fatalf("Error reading weights: %v", err)
			}
			res, err := bst.BuildOptimal(weights)
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Weights: %v\n\n", weights)
			fmt.Fprint(out, renderTree(res.Root, bstLabel(marker{})))
			fmt.Fprintf(out, "\nWeighted path length: %d\n", res.Cost())
			renderCharacteristics(out, bst.Measure(res.Root))
			if matrices, _ := cmd.Flags().GetBool("matrices"); matrices {
				renderMatrix(out, "AW", res.AW)
				renderMatrix(out, "AP", res.AP)
				renderMatrix(out, "AR", res.AR)
			}
		},
	}
	cmdOptimal.Flags().Int("nodes", 0, fmt.Sprintf("number of random keys (3-%d) when no weights are given", demo.MaxOptimalNodes))
	cmdOptimal.Flags().Bool("matrices", true, "print the AW, AP and AR matrices")

	nearOptimal := func(name, short string) *cobra.Command {
		c := &cobra.Command{
			Use:   name + " [key:weight...]",
			Short: short,
			Long:  fmt.Sprintf("%s\n%s", asciiLogo, short),
			Args:  cobra.MinimumNArgs(0),
			Run: func(cmd *cobra.Command, args []string) {
				nodes, _ := cmd.Flags().GetInt("nodes")
				showSteps, _ := cmd.Flags().GetBool("steps")
				weights, err := nearOptimalInput(args, nodes, config)
				if err != nil {
					log.Fatalf("Error reading weights: %v", err)
				}
				root, frames, err := buildNearOptimal(name, weights, false)
				if err != nil {
					log.Fatalf("Error building tree: %v", err)
				}

				out := cmd.OutOrStdout()
				renderWeights(out, weights)
				if showSteps {
					for i, f := range frames {
						writeFrame(out, i, f)
					}
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, renderTree(root, bstLabel(marker{})))
				renderCharacteristics(out, bst.Measure(root))
			},
		}
		c.Flags().Int("nodes", 0, fmt.Sprintf("number of random keys (1-%d) when no pairs are given", demo.MaxNearOptNodes))
		c.Flags().Bool("steps", false, "print every recorded step")
		return c
	}
	cmdA1 := nearOptimal("a1", "Build a nearly optimal tree by inserting keys heaviest first")
	cmdA2 := nearOptimal("a2", "Build a nearly optimal tree by splitting key ranges at their weight midpoint")

	var cmdAVL = &cobra.Command{
		Use:   "avl [value...]",
		Short: "Run inserts and deletes on an AVL tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `AVL inserts the given values, or runs a script such as "insert 10 20 30; delete 20; find 10"`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			script, _ := cmd.Flags().GetString("script")
			showSteps, _ := cmd.Flags().GetBool("steps")
			t := avl.NewTree()
			ops, notes, err := runAVL(t, args, script, config)
			if err != nil {
				log.Fatalf("Error running AVL script: %v", err)
			}

			out := cmd.OutOrStdout()
			if showSteps {
				for i, f := range avlFrames(ops, false) {
					writeFrame(out, i, f)
				}
				fmt.Fprintln(out)
			}
			for _, n := range notes {
				fmt.Fprintf(out, "• %s\n", n)
			}
			fmt.Fprintf(out, "%d operations recorded, %d values stored\n\n", len(ops), t.Len())
			fmt.Fprint(out, renderTree(t.Root(), avlLabel(marker{})))
		},
	}
	cmdAVL.Flags().String("script", "", `commands separated by ';', e.g. "insert 10 20 30; delete 20"`)
	cmdAVL.Flags().Bool("steps", false, "print every recorded operation")

	var cmdHuffman = &cobra.Command{
		Use:   "huffman [text]",
		Short: "Build Huffman or Shannon-Fano codes for a text",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Huffman builds the code tree of the text (or the configured sample) and prints the code table`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			text := config.Huffman.SampleText
			if len(args) == 1 {
				text = args[0]
			}
			codeCache := NewCodeCache()

			if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
				if err := runBubbleTeaApp(InitialHuffmanModel(text, codeCache)); err != nil {
					log.Fatalf("Error running UI: %v", err)
				}
				return
			}

			kind := codeHuffman
			if fano, _ := cmd.Flags().GetBool("fano"); fano {
				kind = codeFano
			}
			res, err := GetOrBuildCode(codeCache, kind, text)
			if err != nil {
				log.Fatalf("Error building code: %v", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderTree(res.Root, huffmanLabel))
			fmt.Fprintln(out)
			renderCodeTable(out, res)
			renderMetrics(out, res.Metrics())

			bits := huffman.Encode(text, res.Table)
			fmt.Fprintf(out, "\nEncoded (%d bits, was %d):\n%s\n", len(bits), len([]rune(text))*huffman.BitsPerSymbol, bits)

			if plot, _ := cmd.Flags().GetBool("plot"); plot {
				fmt.Fprintf(out, "\n%s\n", plotCodeLengths(res, 10))
			}
			if copyBits, _ := cmd.Flags().GetBool("copy"); copyBits {
				if err := copyToClipboard(bits); err != nil {
					log.Printf("Failed to copy to clipboard: %v", err)
				}
			}
		},
	}
	cmdHuffman.Flags().Bool("fano", false, "build a Shannon-Fano tree instead")
	cmdHuffman.Flags().Bool("plot", false, "plot code lengths by symbol")
	cmdHuffman.Flags().Bool("copy", false, "copy the encoded bits to the clipboard")
	cmdHuffman.Flags().BoolP("interactive", "i", false, "edit the text live in a terminal UI")

	var cmdPlay = &cobra.Command{
		Use:   "play <a1|a2|avl> [input...]",
		Short: "Replay the steps of a1, a2 or avl",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Play opens an interactive player over the recorded steps; --plain prints them one per interval`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			plain, _ := cmd.Flags().GetBool("plain")
			intervalMS, _ := cmd.Flags().GetInt("interval")
			nodes, _ := cmd.Flags().GetInt("nodes")
			script, _ := cmd.Flags().GetString("script")

			interval := config.Interval()
			if intervalMS > 0 {
				interval = time.Duration(intervalMS) * time.Millisecond
			}

			title, frames, err := playFrames(args[0], args[1:], nodes, script, config, !plain)
			if err != nil {
				log.Fatalf("Error building steps: %v", err)
			}
			if len(frames) == 0 {
				fmt.Println("Nothing to replay.")
				return
			}

			if plain {
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				if err := playPlain(ctx, cmd.OutOrStdout(), frames, interval, true); err != nil {
					log.Printf("Replay stopped: %v", err)
				}
				return
			}
			autoplay := config.Playback.Autoplay
			if cmd.Flags().Changed("autoplay") {
				autoplay, _ = cmd.Flags().GetBool("autoplay")
			}
			if err := runBubbleTeaApp(InitialTraceModel(title, frames, interval, autoplay)); err != nil {
				log.Fatalf("Error running UI: %v", err)
			}
		},
	}
	cmdPlay.Flags().Bool("plain", false, "print steps to stdout instead of opening the player")
	cmdPlay.Flags().Int("interval", 0, "milliseconds between steps (default from config)")
	cmdPlay.Flags().Int("nodes", 0, "number of random keys when no input is given")
	cmdPlay.Flags().String("script", "", "avl script to replay")
	cmdPlay.Flags().Bool("autoplay", false, "start playing immediately")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Treeviz usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the treeviz CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Treeviz version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show Treeviz configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints the configuration and creates ~/.treeviz.yaml when it is missing`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "treeviz",
		Version: version,
		Long:    asciiLogo,
	}
	rootCmd.AddCommand(cmdOptimal, cmdA1, cmdA2, cmdAVL, cmdHuffman, cmdPlay, cmdUsage, cmdVersion, cmdSettings)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// optimalInput returns the weights given on the command line or random ones.
func optimalInput(args []string, nodes int, cfg *Config) ([]int, error) {
	if len(args) > 0 {
		return parseWeights(args)
	}
	if nodes == 0 {
		nodes = cfg.Demo.OptimalNodes
	}
	if err := checkRange("nodes", nodes, 3, demo.MaxOptimalNodes); err != nil {
		return nil, err
	}
	return newGenerator(cfg).OptimalWeights(nodes)
}

// nearOptimalInput returns the key:weight pairs given on the command line or
// random ones.
func nearOptimalInput(args []string, nodes int, cfg *Config) (map[int]int, error) {
	if len(args) > 0 {
		return parseKeyWeights(args)
	}
	if nodes == 0 {
		nodes = cfg.Demo.NearOptNodes
	}
	if err := checkRange("nodes", nodes, 1, demo.MaxNearOptNodes); err != nil {
		return nil, err
	}
	return newGenerator(cfg).NearOptimalWeights(nodes)
}

// buildNearOptimal runs the A1 or A2 builder and renders its trace.
func buildNearOptimal(name string, weights map[int]int, styled bool) (*bst.Node, []frame, error) {
	switch name {
	case "a1":
		res, err := bst.BuildA1(weights)
		if err != nil {
			return nil, nil, err
		}
		return res.Root, a1Frames(res, styled), nil
	case "a2":
		res, err := bst.BuildA2(weights)
		if err != nil {
			return nil, nil, err
		}
		return res.Root, a2Frames(res, styled), nil
	}
	return nil, nil, errors.Mark(errors.Newf("unknown builder %q", name), errBadInput)
}

// runAVL inserts values and then runs script on t.
func runAVL(t *avl.Tree, values []string, script string, cfg *Config) ([]avl.Operation, []string, error) {
	if len(values) > 0 {
		script = "insert " + strings.Join(values, " ") + "; " + script
	}
	if strings.TrimSpace(script) == "" {
		script = fmt.Sprintf("random %d", cfg.Demo.NearOptNodes)
	}
	cmds, err := parseScript(script)
	if err != nil {
		return nil, nil, err
	}
	return runScript(t, cmds, newGenerator(cfg))
}

// playFrames builds the trace the play command replays.
func playFrames(name string, args []string, nodes int, script string, cfg *Config, styled bool) (string, []frame, error) {
	switch name {
	case "a1", "a2":
		weights, err := nearOptimalInput(args, nodes, cfg)
		if err != nil {
			return "", nil, err
		}
		_, frames, err := buildNearOptimal(name, weights, styled)
		return strings.ToUpper(name) + " tree", frames, err
	case "avl":
		ops, _, err := runAVL(avl.NewTree(), args, script, cfg)
		if err != nil {
			return "", nil, err
		}
		return "AVL tree", avlFrames(ops, styled), nil
	}
	return "", nil, errors.Mark(errors.Newf("nothing to play for %q, expected a1, a2 or avl", name), errBadInput)
}
