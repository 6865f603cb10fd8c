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

// Package irbuild constructs the SSA form consumed by the mpidep analyzer.
//
// It mirrors the buildssa pass from golang.org/x/tools, with one difference:
// the IR is built in naive (unlifted) form. Register lifting would promote
// local variables into SSA registers and erase their Alloc instructions, but
// the dependency analysis reports exactly those allocations, so they have to
// stay materialized as memory locations with explicit loads and stores.
package irbuild

import (
	"go/ast"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ssa"
)

// Analyzer builds unlifted SSA form for the package under analysis.
var Analyzer = &analysis.Analyzer{
	Name:       "mpidepir",
	Doc:        "build unlifted SSA-form IR for the mpidep analyzer",
	Run:        run,
	ResultType: reflect.TypeOf(new(IR)),
}

// IR is the SSA form of a single package. It is treated as immutable input by
// everything downstream.
type IR struct {
	// Pkg is the SSA package under analysis.
	Pkg *ssa.Package

	// SrcFuncs are the functions declared in the package, in source order,
	// including anonymous functions nested inside them. Functions declared
	// without a body are included with nil Blocks.
	SrcFuncs []*ssa.Function
}

// Mode keeps local variables as Alloc instructions and instantiates generic
// bodies so call sites inside instantiations are visible.
const Mode = ssa.NaiveForm | ssa.InstantiateGenerics

func run(pass *analysis.Pass) (any, error) {
	prog := ssa.NewProgram(pass.Fset, Mode)

	// Create SSA packages for all imports. Order is not significant.
	created := make(map[*types.Package]bool)
	var createAll func(pkgs []*types.Package)
	createAll = func(pkgs []*types.Package) {
		for _, p := range pkgs {
			if created[p] {
				continue
			}
			created[p] = true
			createAll(p.Imports())
			prog.CreatePackage(p, nil, nil, true)
		}
	}
	createAll(pass.Pkg.Imports())

	pkg := prog.CreatePackage(pass.Pkg, pass.Files, pass.TypesInfo, false)
	pkg.Build()

	return &IR{Pkg: pkg, SrcFuncs: SourceFuncs(prog, pass.Files, pass.TypesInfo)}, nil
}

// SourceFuncs returns the functions declared in files, in source order, each
// followed by the anonymous functions nested inside it.
func SourceFuncs(prog *ssa.Program, files []*ast.File, info *types.Info) []*ssa.Function {
	var funcs []*ssa.Function

	var add func(fn *ssa.Function)
	add = func(fn *ssa.Function) {
		funcs = append(funcs, fn)
		for _, anon := range fn.AnonFuncs {
			add(anon)
		}
	}

	for _, f := range files {
		for _, decl := range f.Decls {
			fdecl, ok := decl.(*ast.FuncDecl)
			if !ok || fdecl.Name.Name == "_" {
				// SSA does not build a function for a blank FuncDecl.
				continue
			}

			obj, ok := info.Defs[fdecl.Name].(*types.Func)
			if !ok {
				continue
			}

			if fn := prog.FuncValue(obj); fn != nil {
				add(fn)
			}
		}
	}

	return funcs
}
