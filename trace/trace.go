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

// Package trace records the step logs produced by the instrumented tree
// builders and replays them.
//
// Every entry owns a full snapshot of the tree taken when it was recorded, so a
// log can be read in any order: stepping backwards or jumping to an arbitrary
// index never depends on the entries before it.
package trace

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrOutOfRange is returned when an index does not name a recorded entry.
var ErrOutOfRange = errors.New("trace index out of range")

// Entry is implemented by every step type so that a generic presenter can
// list steps without knowing which builder produced them.
type Entry interface {
	// Tag is the action name from the builder's fixed vocabulary.
	Tag() string
	// Describe is the human readable narration of the step.
	Describe() string
}

// Mark is an optional key reference on a step (the key being inserted, the
// node to highlight).
type Mark struct {
	Key int
	Set bool
}

// MarkOf returns a set mark for key.
func MarkOf(key int) Mark {
	return Mark{Key: key, Set: true}
}

func (m Mark) String() string {
	if !m.Set {
		return "-"
	}
	return fmt.Sprint(m.Key)
}

// Log is an append-only sequence of entries.
type Log[E any] struct {
	entries []E
}

// Append records e at the end of the log.
func (l *Log[E]) Append(e E) {
	l.entries = append(l.entries, e)
}

// Len returns the number of recorded entries.
func (l *Log[E]) Len() int {
	return len(l.entries)
}

// At returns the entry at index i.
func (l *Log[E]) At(i int) (E, error) {
	if i < 0 || i >= len(l.entries) {
		var zero E
		return zero, errors.Wrapf(ErrOutOfRange, "index %d of %d", i, len(l.entries))
	}
	return l.entries[i], nil
}

// Entries returns a copy of the recorded entries.
func (l *Log[E]) Entries() []E {
	out := make([]E, len(l.entries))
	copy(out, l.entries)
	return out
}
