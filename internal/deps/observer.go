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

package deps

import (
	"log/slog"

	"golang.org/x/tools/go/ssa"
)

// Observer receives worklist events during a run, keeping diagnostic tracing
// out of the algorithm itself. Implementations must not mutate the IR.
type Observer interface {
	// Seed is invoked for each terminator operand entering the initial
	// worklist.
	Seed(term, op ssa.Instruction)

	// Pop is invoked when v is taken off the worklist.
	Pop(v ssa.Instruction)

	// PushOperand is invoked when an operand of from is scheduled (use-def).
	PushOperand(from, op ssa.Instruction)

	// PushUse is invoked when a reader of alloc is scheduled (def-use).
	PushUse(alloc *ssa.Alloc, use ssa.Instruction)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) Seed(_, _ ssa.Instruction)           {}
func (NopObserver) Pop(ssa.Instruction)                 {}
func (NopObserver) PushOperand(_, _ ssa.Instruction)    {}
func (NopObserver) PushUse(*ssa.Alloc, ssa.Instruction) {}

// NewLogObserver traces worklist events to l at debug level.
func NewLogObserver(l *slog.Logger) Observer {
	return logObserver{l: l}
}

type logObserver struct{ l *slog.Logger }

func (o logObserver) Seed(term, op ssa.Instruction) {
	o.l.Debug("terminator use-def", "term", instrLabel(term), "op", instrLabel(op))
}

func (o logObserver) Pop(v ssa.Instruction) {
	o.l.Debug("dep", "instr", instrLabel(v))
}

func (o logObserver) PushOperand(from, op ssa.Instruction) {
	o.l.Debug("dep use-def", "from", instrLabel(from), "op", instrLabel(op))
}

func (o logObserver) PushUse(alloc *ssa.Alloc, use ssa.Instruction) {
	o.l.Debug("dep def-use", "alloc", alloc.Name(), "use", instrLabel(use))
}

// instrLabel names an instruction by its register when it has one.
func instrLabel(v ssa.Instruction) string {
	if val, ok := v.(ssa.Value); ok {
		return val.Name()
	}

	return v.String()
}
