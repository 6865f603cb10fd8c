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
	"reflect"

	"golang.org/x/tools/go/analysis"

	"github.com/veristate/mpidep/internal/deps"
	"github.com/veristate/mpidep/internal/irbuild"
	"github.com/veristate/mpidep/internal/target"
)

// Public API constants for the mpidep analyzer.
const (
	name = "mpidep"
	doc  = `mpidep reports the stack variables that control whether send/receive calls execute`
	url  = "https://pkg.go.dev/github.com/veristate/mpidep"
)

// Errors surfaced by a run. All are unrecoverable for the current run; no
// partial result is produced.
var (
	// ErrTargetNotFound reports a configured call name matching no function.
	ErrTargetNotFound = target.ErrTargetNotFound

	// ErrAmbiguousTarget reports a configured call name matching more than
	// one function.
	ErrAmbiguousTarget = target.ErrAmbiguousTarget

	// ErrMalformedIR reports an inconsistency in the IR handed to the
	// analysis.
	ErrMalformedIR = deps.ErrMalformedIR
)

// New creates a new instance of the mpidep analyzer. It allows for
// programmatic configuration using [Option], which is useful for integrating
// the analyzer into other tools. For command-line use, the pre-configured
// [Analyzer] variable is typically sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := makeRunOptions(Options(opts))

	a := &analysis.Analyzer{
		Name:       name,
		Doc:        doc,
		URL:        url,
		Run:        r.run,
		Requires:   []*analysis.Analyzer{irbuild.Analyzer},
		ResultType: reflect.TypeOf((*Result)(nil)),
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] tracking the default
// "send" and "receive" call targets.
var Analyzer = New()
