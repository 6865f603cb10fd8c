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

package a

// send and receive model the message-passing runtime under verification.
func send(buf *int) {}

func receive(buf *int) {}

func flag() bool { return true }
func count() int { return 1 }
func work() {}

// guarded: the branch condition loads x, so x controls the receive.
func guarded() {
	var buf int
	x := flag() // want `variable x controls whether send or receive executes`
	if x {
		receive(&buf)
	}
}

// twoGuards: each call sits behind its own branch; both conditions are
// control dependencies.
func twoGuards() {
	var buf int
	x := flag() // want `variable x controls whether send or receive executes`
	y := flag() // want `variable y controls whether send or receive executes`
	if x {
		send(&buf)
	} else if y {
		receive(&buf)
	}
}

// compared: both operands of the comparison feed the branch.
func compared() {
	var buf int
	i := count() // want `variable i controls whether send or receive executes`
	j := count() // want `variable j controls whether send or receive executes`
	if i < j {
		send(&buf)
	}
}

// loop: the induction variable decides whether the body executes.
func loop() {
	var buf int
	for i := 0; i < 3; i++ { // want `variable i controls whether send or receive executes`
		receive(&buf)
	}
}

// reread: x is read again after the call, but the later branch guards no
// send/receive, so nothing beyond x is reported.
func reread() {
	var buf int
	x := flag() // want `variable x controls whether send or receive executes`
	if x {
		receive(&buf)
	}
	if x {
		work()
	}
}

// unguarded: the call sits in the entry block, which has no predecessors.
// No seeds, no report.
func unguarded() {
	var buf int
	send(&buf)
}

// escapes: x is moved to the heap because its address escapes; only stack
// allocations are reported.
func escapes() *bool {
	var buf int
	x := flag()
	if x {
		send(&buf)
	}

	return &x
}
