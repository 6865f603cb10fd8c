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

// Package counts exercises the call-site counter diagnostic. It is reported
// at the send target's declaration.
package counts

func send(buf *int) {} // want `send calls: 1 in 1 blocks, receive calls: 1 in 1 blocks`

func receive(buf *int) {}

func exchange(rank int) { // want `variable rank controls whether send or receive executes`
	var buf int
	if rank == 0 {
		send(&buf)
	} else {
		receive(&buf)
	}
}
