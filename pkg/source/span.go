// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package source provides the textual plumbing shared by the tokenizer and
// the diagnostics it feeds: positions within a file, the file itself, and
// syntax errors anchored to a span of it.
package source

// Span represents a contiguous run of runes within a File's contents:
// [start, end), counted in runes rather than bytes so that a span stays
// valid regardless of multi-byte UTF-8 sequences appearing (harmlessly,
// since Metamath source is printable ASCII) in surrounding text.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a new span whilst checking the internal invariant that
// start <= end is maintained.
func NewSpan(start, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span.
func (p Span) Start() int { return p.start }

// End returns one past the last index of this span.
func (p Span) End() int { return p.end }

// Length returns the number of items covered by this span.
func (p Span) Length() int { return p.end - p.start }
