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

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ssa"

	"github.com/veristate/mpidep/internal/deps"
	"github.com/veristate/mpidep/internal/irbuild"
	"github.com/veristate/mpidep/internal/target"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the mpidep pipeline for one package: resolve the two call
// targets, collect the control-dependency seeds, close them to a fixpoint and
// report the stack allocations in the closure.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	ir, ok := p.ResultOf[irbuild.Analyzer].(*irbuild.IR)
	if !ok {
		return nil, fmt.Errorf("mpidep: %s %w", irbuild.Analyzer.Name, ErrResultMissing)
	}

	sendName, recvName, counts, err := r.settings()
	if err != nil {
		return nil, err
	}

	sendFn, sendErr := target.Resolve(ir.SrcFuncs, sendName)
	recvFn, recvErr := target.Resolve(ir.SrcFuncs, recvName)

	// Most packages are not the program under verification. When neither
	// name resolves there is nothing to analyze and nothing to report; a
	// half-resolved pair is a configuration error.
	if errors.Is(sendErr, ErrTargetNotFound) && errors.Is(recvErr, ErrTargetNotFound) {
		return &Result{}, nil
	}
	if sendErr != nil {
		return nil, fmt.Errorf("mpidep: send: %w", sendErr)
	}
	if recvErr != nil {
		return nil, fmt.Errorf("mpidep: receive: %w", recvErr)
	}

	result, err := analyze(ir.SrcFuncs, sendFn, recvFn, r.logger)
	if err != nil {
		return nil, fmt.Errorf("mpidep: %w", err)
	}

	for _, a := range result.Allocs {
		if a.Pos().IsValid() {
			p.Reportf(a.Pos(), "variable %s controls whether %s or %s executes",
				allocName(a), sendName, recvName)
		}
	}

	if counts {
		p.Reportf(sendFn.Pos(), "send calls: %d in %d blocks, receive calls: %d in %d blocks",
			result.Stats.SendCalls, result.Stats.SendBlocks,
			result.Stats.RecvCalls, result.Stats.RecvBlocks)
	}

	return result, nil
}

// Analyze runs the dependency analysis over srcFuncs without the go/analysis
// plumbing. Unlike the analyzer pass, it is strict: both target names must
// resolve, and a missing one fails with [ErrTargetNotFound]. The functions
// must be in unlifted SSA form (see [Result]); logger may be nil.
func Analyze(srcFuncs []*ssa.Function, sendName, recvName string, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sendFn, err := target.Resolve(srcFuncs, sendName)
	if err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}

	recvFn, err := target.Resolve(srcFuncs, recvName)
	if err != nil {
		return nil, fmt.Errorf("receive: %w", err)
	}

	return analyze(srcFuncs, sendFn, recvFn, logger)
}

func analyze(srcFuncs []*ssa.Function, sendFn, recvFn *ssa.Function, logger *slog.Logger) (*Result, error) {
	send := target.Target{Fn: sendFn, Sites: target.CallSites(srcFuncs, sendFn)}
	recv := target.Target{Fn: recvFn, Sites: target.CallSites(srcFuncs, recvFn)}

	logger.Debug("resolved call targets",
		"send", sendFn.String(), "sendSites", len(send.Sites),
		"recv", recvFn.String(), "recvSites", len(recv.Sites))

	res, err := deps.Run(send, recv, deps.NewLogObserver(logger))
	if err != nil {
		return nil, err
	}

	result := &Result{Allocs: res.Allocs, Stats: Stats(res.Stats)}

	logger.Debug("analysis complete",
		"allocs", result.Names(),
		"sendCalls", result.Stats.SendCalls, "recvCalls", result.Stats.RecvCalls,
		"sendBlocks", result.Stats.SendBlocks, "recvBlocks", result.Stats.RecvBlocks)

	return result, nil
}
