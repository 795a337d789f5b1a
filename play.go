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
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/saod-vizual/treeviz/trace"
)

// playPlain prints every frame to w, one per interval, with a progress bar on
// stderr. It returns early when ctx is cancelled.
func playPlain(ctx context.Context, w io.Writer, frames []frame, interval time.Duration, showProgress bool) error {
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(frames),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("▶ Replaying steps"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(os.Stderr, "\n✅ Replay completed!\n")
			}),
		)
	}

	player := trace.NewPlayer(frames)
	return player.Play(ctx, interval, func(i int, f frame) {
		writeFrame(w, i, f)
		if bar != nil {
			_ = bar.Set(i + 1)
		}
	})
}

func writeFrame(w io.Writer, i int, f frame) {
	fmt.Fprintf(w, "\n── %s ──\n%s\n%s", f.title(i), f.Message, f.Tree)
}
