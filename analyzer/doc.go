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

/*
Package analyzer implements the mpidep static analysis pass.

# Overview

mpidep computes, for a pair of designated call targets (a "send" and a
"receive" operation), the set of stack variables whose values transitively
determine whether those calls execute. Model checkers for message-passing
programs use the result to prune execution paths that cannot affect
communication behavior.

# Example

Given

	func exchange(rank int) {
	    var buf int
	    if rank == 0 {
	        send(&buf)
	    } else {
	        receive(&buf)
	    }
	}

the analyzer reports rank: the branch on it decides which call executes. buf
is not reported; it is an argument of the calls, not a control dependency.

# Algorithm

Starting from the basic blocks containing the call sites, the operands of
every predecessor block's terminator seed a worklist. The worklist is closed
backward over operand (use-def) edges, and forward over use (def-use) edges
for stack allocations only, until a fixpoint. Stack allocations in the
closure are reported.

No alias analysis is performed: only direct loads and stores are followed, so
a variable reachable solely through a pointer alias may be under-reported.

# Configuration

The call target names default to "send" and "receive" and can be changed with
the -send and -recv flags, the [WithSendTarget] and [WithRecvTarget] options,
or a TOML configuration file (-config, [WithConfigFile]). The -counts flag
and [WithReportCounts] add a diagnostic with the per-target call-site and
block counters, reported at the send target's declaration.
*/
package analyzer
