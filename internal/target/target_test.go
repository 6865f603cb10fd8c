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

package target_test

import (
	"errors"
	"testing"

	"github.com/veristate/mpidep/internal/target"
	"github.com/veristate/mpidep/internal/testsource"
)

const src = `
func send(buf *int)    {}
func receive(buf *int) {}

func caller() {
	var buf int
	send(&buf)
	defer send(&buf)
	go send(&buf)
	receive(&buf)

	f := send
	f(&buf)
}
`

func TestLookup(t *testing.T) {
	t.Parallel()

	_, funcs := testsource.BuildSSA(t, src)

	send, err := target.Lookup(funcs, "send")
	if err != nil {
		t.Fatalf("Lookup(send) failed: %v", err)
	}

	// Three static invocations: call, defer and go. The call through the
	// function value f is deliberately not resolved.
	if got := len(send.Sites); got != 3 {
		t.Errorf("Got %d send call sites, want 3", got)
	}

	recv, err := target.Lookup(funcs, "receive")
	if err != nil {
		t.Fatalf("Lookup(receive) failed: %v", err)
	}

	if got := len(recv.Sites); got != 1 {
		t.Errorf("Got %d receive call sites, want 1", got)
	}
}

func TestResolveNotFound(t *testing.T) {
	t.Parallel()

	_, funcs := testsource.BuildSSA(t, src)

	if _, err := target.Resolve(funcs, "nonexistent"); !errors.Is(err, target.ErrTargetNotFound) {
		t.Errorf("Resolve() = %v, want ErrTargetNotFound", err)
	}
}

func TestResolveAmbiguous(t *testing.T) {
	t.Parallel()

	_, funcs := testsource.BuildSSA(t, `
type left struct{}

func (left) send() {}

type right struct{}

func (right) send() {}
`)

	if _, err := target.Resolve(funcs, "send"); !errors.Is(err, target.ErrAmbiguousTarget) {
		t.Errorf("Resolve() = %v, want ErrAmbiguousTarget", err)
	}
}

func TestResolveSkipsAnonymous(t *testing.T) {
	t.Parallel()

	_, funcs := testsource.BuildSSA(t, `
func send(buf *int) {}

func caller() {
	f := func() {}
	f()
}
`)

	fn, err := target.Resolve(funcs, "send")
	if err != nil {
		t.Fatalf("Resolve(send) failed: %v", err)
	}

	if fn.Name() != "send" {
		t.Errorf("Resolved %s, want send", fn.Name())
	}
}
