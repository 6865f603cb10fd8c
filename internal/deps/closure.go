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

// Package deps computes the transitive closure of control dependencies on a
// pair of send/receive call targets.
//
// Seeded with the operands of every terminator branching into a block that
// contains a call site, the closure is taken backward over operand (use-def)
// edges and, for stack allocations only, forward over use (def-use) edges: a
// later read of a variable known to control a call may itself feed another
// branch. No alias analysis is performed; only direct loads and stores are
// followed, so locations reachable through aliasing may be under-reported.
package deps

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/tools/go/ssa"

	"github.com/veristate/mpidep/internal/target"
)

// Result of one analysis run.
type Result struct {
	// Allocs are the stack allocations in the closure, ordered by source
	// position.
	Allocs []*ssa.Alloc

	Stats Stats
}

// Run computes the control dependencies of the send and receive targets.
// The IR is only read; worklist and closure state are private to the call, so
// independent runs over the same program may proceed concurrently. A nil
// observer disables tracing.
func Run(send, recv target.Target, obs Observer) (Result, error) {
	if obs == nil {
		obs = NopObserver{}
	}

	wl, st, err := Seeds(send, recv, obs)
	if err != nil {
		return Result{}, err
	}

	c := NewClosure()
	c.Reach(wl, obs)

	return Result{Allocs: c.Allocs(), Stats: st}, nil
}

// Closure is a dependency set under construction. Instructions are tracked by
// identity and the set never shrinks.
type Closure struct {
	set map[ssa.Instruction]struct{}
}

// NewClosure returns an empty dependency set.
func NewClosure() *Closure {
	return &Closure{set: make(map[ssa.Instruction]struct{})}
}

// Reach drains the worklist to a fixpoint, growing the closure.
//
// For each popped instruction, all instruction-valued operands are pushed
// before the membership check; re-pushing a closed instruction is a no-op, so
// this only costs redundant pops. The forward def-use expansion runs once per
// instruction, on first insertion, and only for stack allocations, which
// bounds the total number of pushes and guarantees termination.
func (c *Closure) Reach(worklist []ssa.Instruction, obs Observer) {
	if obs == nil {
		obs = NopObserver{}
	}

	var buf [8]*ssa.Value

	for len(worklist) > 0 {
		v := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		obs.Pop(v)

		// Use-def: schedule whatever defines the values v consumes.
		for _, op := range v.Operands(buf[:0]) {
			if u, ok := (*op).(ssa.Instruction); ok {
				obs.PushOperand(v, u)
				worklist = append(worklist, u)
			}
		}

		if _, ok := c.set[v]; ok {
			continue
		}
		c.set[v] = struct{}{}

		// Def-use, restricted to stack allocations: every later read of a
		// variable that controls a call may feed another branch.
		if a, ok := v.(*ssa.Alloc); ok && !a.Heap {
			if refs := a.Referrers(); refs != nil {
				for _, u := range *refs {
					obs.PushUse(a, u)
					worklist = append(worklist, u)
				}
			}
		}
	}
}

// Contains reports whether instr is in the closure.
func (c *Closure) Contains(instr ssa.Instruction) bool {
	_, ok := c.set[instr]

	return ok
}

// Size returns the number of instructions in the closure.
func (c *Closure) Size() int { return len(c.set) }

// Allocs projects the closure onto stack allocations, ordered by source
// position. Intermediate computations stay in the closure for correctness but
// are not reported; they do not name program variables a verifier can track.
func (c *Closure) Allocs() []*ssa.Alloc {
	var allocs []*ssa.Alloc
	for instr := range c.set {
		if a, ok := instr.(*ssa.Alloc); ok && !a.Heap {
			allocs = append(allocs, a)
		}
	}

	slices.SortFunc(allocs, func(a, b *ssa.Alloc) int {
		if r := cmp.Compare(a.Pos(), b.Pos()); r != 0 {
			return r
		}

		return strings.Compare(a.Name(), b.Name())
	})

	return allocs
}
