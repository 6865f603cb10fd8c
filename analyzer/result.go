// Copyright 2026 The mpidep Authors. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import "golang.org/x/tools/go/ssa"

// Result is the analysis output exported to downstream passes.
//
// The analysis follows direct loads and stores only; an allocation reachable
// solely through pointer aliasing may be missing from Allocs.
type Result struct {
	// Allocs are the stack allocations established as control dependencies
	// of the configured calls, ordered by source position. Empty when the
	// package defines neither call target.
	Allocs []*ssa.Alloc

	// Stats are observability counters for the run.
	Stats Stats
}

// Stats counts the located call sites and the distinct basic blocks
// containing them. A block containing both kinds of call counts once, as a
// send block.
type Stats struct {
	SendCalls  int
	RecvCalls  int
	SendBlocks int
	RecvBlocks int
}

// Names returns the source-level names of the reported variables, in report
// order. Compiler-introduced allocations without a source name use their
// register name.
func (r *Result) Names() []string {
	names := make([]string, len(r.Allocs))
	for i, a := range r.Allocs {
		names[i] = allocName(a)
	}

	return names
}

// allocName prefers the variable name recorded for the allocation.
func allocName(a *ssa.Alloc) string {
	if a.Comment != "" {
		return a.Comment
	}

	return a.Name()
}
