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

package trace

import (
	"context"
	"time"
)

// Player is a cursor over a finished list of steps. It is not safe for
// concurrent use; the presenter owns it.
type Player[E any] struct {
	steps []E
	pos   int
}

// NewPlayer returns a player positioned on the first step.
func NewPlayer[E any](steps []E) *Player[E] {
	return &Player[E]{steps: steps}
}

// Len returns the number of steps.
func (p *Player[E]) Len() int { return len(p.steps) }

// Pos returns the current index.
func (p *Player[E]) Pos() int { return p.pos }

// Current returns the step under the cursor; ok is false for an empty trace.
func (p *Player[E]) Current() (step E, ok bool) {
	if len(p.steps) == 0 {
		return step, false
	}
	return p.steps[p.pos], true
}

// Seek moves the cursor to i, clamped to the valid range.
func (p *Player[E]) Seek(i int) {
	if len(p.steps) == 0 {
		p.pos = 0
		return
	}
	p.pos = min(max(i, 0), len(p.steps)-1)
}

// Next advances one step and reports whether the cursor moved.
func (p *Player[E]) Next() bool {
	if p.pos+1 >= len(p.steps) {
		return false
	}
	p.pos++
	return true
}

// Prev steps back once and reports whether the cursor moved.
func (p *Player[E]) Prev() bool {
	if p.pos == 0 {
		return false
	}
	p.pos--
	return true
}

// First rewinds to the first step.
func (p *Player[E]) First() { p.pos = 0 }

// Last jumps to the final step.
func (p *Player[E]) Last() { p.Seek(len(p.steps) - 1) }

// AtEnd reports whether the cursor is on the final step.
func (p *Player[E]) AtEnd() bool {
	return p.pos >= len(p.steps)-1
}

// Play calls fn for the current step and then for every following step, one
// per interval, until the trace ends or ctx is cancelled. The cursor stays on
// the last step shown.
func (p *Player[E]) Play(ctx context.Context, interval time.Duration, fn func(i int, step E)) error {
	if len(p.steps) == 0 {
		return nil
	}
	fn(p.pos, p.steps[p.pos])

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !p.AtEnd() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			p.Next()
			fn(p.pos, p.steps[p.pos])
		}
	}
	return nil
}
