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

// Package testsource compiles Go source fragments into unlifted SSA for
// tests, handling the parse/type-check/build boilerplate in one place.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"

	"github.com/veristate/mpidep/internal/irbuild"
)

const testpkg = "test"

// BuildSSA compiles src, a complete Go file without the package clause, into
// the same unlifted SSA form the analyzer's IR pass produces. It returns the
// package and its source functions, anonymous functions included. Sanity
// checks are enabled so malformed test inputs fail loudly.
func BuildSSA(tb testing.TB, src string) (*ssa.Package, []*ssa.Function) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, "package "+testpkg+"\n\n"+src, parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source: %v", err)
	}

	tc := &types.Config{Importer: importer.Default()}
	mode := irbuild.Mode | ssa.SanityCheckFunctions

	pkg, info, err := ssautil.BuildPackage(tc, fset, types.NewPackage(testpkg, ""), []*ast.File{f}, mode)
	if err != nil {
		tb.Fatalf("Failed to build SSA: %v", err)
	}

	return pkg, irbuild.SourceFuncs(pkg.Prog, []*ast.File{f}, info)
}
