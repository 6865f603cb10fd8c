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
	"errors"
	"fmt"

	"golang.org/x/tools/go/ssa"

	"github.com/veristate/mpidep/internal/target"
)

// ErrMalformedIR reports an IR invariant violation, such as a basic block
// without a terminator. It is detected defensively, never corrected.
var ErrMalformedIR = errors.New("malformed IR")

// Stats counts call sites per target and the distinct basic blocks containing
// them. The counts are observability data and do not affect the result.
type Stats struct {
	SendCalls  int
	RecvCalls  int
	SendBlocks int
	RecvBlocks int
}

// dependencyBlocks collects the distinct enclosing blocks of the send and
// receive call sites, in insertion order. A block containing both kinds of
// call is counted for the target seen first.
func dependencyBlocks(send, recv target.Target) ([]*ssa.BasicBlock, Stats) {
	var blocks []*ssa.BasicBlock
	seen := make(map[*ssa.BasicBlock]struct{})
	var st Stats

	add := func(b *ssa.BasicBlock) bool {
		if _, ok := seen[b]; ok {
			return false
		}
		seen[b] = struct{}{}
		blocks = append(blocks, b)

		return true
	}

	for _, site := range send.Sites {
		if add(site.Block()) {
			st.SendBlocks++
		}
		st.SendCalls++
	}
	for _, site := range recv.Sites {
		if add(site.Block()) {
			st.RecvBlocks++
		}
		st.RecvCalls++
	}

	return blocks, st
}

// Seeds builds the initial worklist: for every block containing a call site,
// the instruction operands of each predecessor's terminator. Those operands
// decide whether control reaches the block at all, which makes them control
// dependencies of every call the block contains. A block without predecessors
// contributes nothing.
func Seeds(send, recv target.Target, obs Observer) ([]ssa.Instruction, Stats, error) {
	if obs == nil {
		obs = NopObserver{}
	}

	blocks, st := dependencyBlocks(send, recv)

	var wl []ssa.Instruction
	var buf [8]*ssa.Value

	for _, b := range blocks {
		for _, pred := range b.Preds {
			term, err := terminator(pred)
			if err != nil {
				return nil, Stats{}, err
			}

			for _, op := range term.Operands(buf[:0]) {
				if u, ok := (*op).(ssa.Instruction); ok {
					obs.Seed(term, u)
					wl = append(wl, u)
				}
			}
		}
	}

	return wl, st, nil
}

// terminator returns the final instruction of b.
func terminator(b *ssa.BasicBlock) (ssa.Instruction, error) {
	if len(b.Instrs) == 0 {
		return nil, fmt.Errorf("%w: empty block %d in %s", ErrMalformedIR, b.Index, b.Parent())
	}

	return b.Instrs[len(b.Instrs)-1], nil
}
