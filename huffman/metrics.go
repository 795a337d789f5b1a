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

package huffman

import "math"

// BitsPerSymbol is the fixed-width size the compression ratio is measured
// against.
const BitsPerSymbol = 8

// Metrics summarises the quality of a code.
type Metrics struct {
	Symbols       int // runes in the text
	RawBits       int
	EncodedBits   int
	Entropy       float64
	AverageLength float64 // bits per symbol, weighted by frequency
	KraftSum      float64
	Redundancy    float64 // AverageLength - Entropy

	// CompressionRatio is the percentage of bits saved against BitsPerSymbol.
	CompressionRatio float64
}

// Metrics computes the code metrics of r over its own text.
func (r *Result) Metrics() Metrics {
	var m Metrics
	for _, s := range r.Stats {
		m.Symbols += s.Freq
		m.EncodedBits += s.Freq * s.Length
		m.KraftSum += math.Pow(2, -float64(s.Length))
	}
	if m.Symbols == 0 {
		return m
	}
	m.RawBits = m.Symbols * BitsPerSymbol

	total := float64(m.Symbols)
	for _, s := range r.Stats {
		p := float64(s.Freq) / total
		m.Entropy -= p * math.Log2(p)
		m.AverageLength += p * float64(s.Length)
	}
	m.Redundancy = m.AverageLength - m.Entropy
	m.CompressionRatio = (1 - float64(m.EncodedBits)/float64(m.RawBits)) * 100
	return m
}
