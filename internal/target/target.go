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

// Package target locates the configured send and receive call targets in a
// package and enumerates their call sites.
package target

import (
	"errors"
	"fmt"

	"golang.org/x/tools/go/ssa"
)

// ErrTargetNotFound is returned when a configured call name matches no
// function in the analyzed package.
var ErrTargetNotFound = errors.New("target function not found")

// ErrAmbiguousTarget is returned when a configured call name matches more
// than one function, for example two methods with the same name.
var ErrAmbiguousTarget = errors.New("ambiguous target function")

// A Target is a resolved call target together with every instruction that
// invokes it.
type Target struct {
	Fn    *ssa.Function
	Sites []ssa.CallInstruction
}

// Lookup resolves name among srcFuncs and collects its call sites.
func Lookup(srcFuncs []*ssa.Function, name string) (Target, error) {
	fn, err := Resolve(srcFuncs, name)
	if err != nil {
		return Target{}, err
	}

	return Target{Fn: fn, Sites: CallSites(srcFuncs, fn)}, nil
}

// Resolve scans srcFuncs for the single function or method named name.
// Anonymous functions are skipped; they cannot be named call targets.
func Resolve(srcFuncs []*ssa.Function, name string) (*ssa.Function, error) {
	var found *ssa.Function

	for _, fn := range srcFuncs {
		if fn.Parent() != nil || fn.Name() != name {
			continue
		}

		if found != nil {
			return nil, fmt.Errorf("%w: %q matches %s and %s",
				ErrAmbiguousTarget, name, found.RelString(nil), fn.RelString(nil))
		}
		found = fn
	}

	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, name)
	}

	return found, nil
}

// CallSites returns every instruction in srcFuncs that statically invokes fn,
// covering call, defer and go instructions. Calls through interfaces or
// function values are not resolved.
func CallSites(srcFuncs []*ssa.Function, fn *ssa.Function) []ssa.CallInstruction {
	var sites []ssa.CallInstruction

	for _, caller := range srcFuncs {
		for _, b := range caller.Blocks {
			for _, instr := range b.Instrs {
				call, ok := instr.(ssa.CallInstruction)
				if ok && call.Common().StaticCallee() == fn {
					sites = append(sites, call)
				}
			}
		}
	}

	return sites
}
