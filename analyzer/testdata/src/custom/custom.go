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

// Package custom exercises renamed call targets, configured via options,
// flags or a configuration file.
package custom

func mpiSend(buf *int, dest int) {}

func mpiRecv(buf *int, src int) {}

// exchange picks the call by rank, the MPI idiom for point-to-point
// communication. The parameter spill is the reported allocation.
func exchange(rank int) { // want `variable rank controls whether mpiSend or mpiRecv executes`
	var buf int
	if rank == 0 {
		mpiSend(&buf, 1)
	} else {
		mpiRecv(&buf, 0)
	}
}

// broadcast is unconditional; nothing controls the send.
func broadcast() {
	var buf int
	mpiSend(&buf, 1)
}
