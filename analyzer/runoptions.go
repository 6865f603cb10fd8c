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
	"log/slog"

	"github.com/veristate/mpidep/internal/config"
)

// Default call target names, used when neither options, flags nor a
// configuration file name a target.
const (
	DefaultSendTarget = "send"
	DefaultRecvTarget = "receive"
)

// runOptions represent the configuration of one mpidep analyzer instance.
type runOptions struct {
	// send and recv are the configured call target names; empty means unset.
	send, recv string

	// configFile is the path of an optional TOML configuration file.
	configFile string

	// counts adds a diagnostic carrying the call-site counters.
	counts bool

	// logger receives the debug trace.
	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options]
// applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes a new runOptions instance with default
// values.
func defaultRunOptions() *runOptions {
	return &runOptions{logger: slog.New(slog.DiscardHandler)}
}

// settings resolves the effective configuration. Target name precedence,
// lowest first: built-in defaults, configuration file, explicit options and
// flags. The counter diagnostic is enabled by any source.
func (r *runOptions) settings() (send, recv string, counts bool, err error) {
	send, recv = DefaultSendTarget, DefaultRecvTarget
	counts = r.counts

	if r.configFile != "" {
		f, err := config.Load(r.configFile)
		if err != nil {
			return "", "", false, err
		}

		if f.Send != "" {
			send = f.Send
		}
		if f.Recv != "" {
			recv = f.Recv
		}
		if f.Counts != nil {
			counts = counts || *f.Counts
		}
	}

	if r.send != "" {
		send = r.send
	}
	if r.recv != "" {
		recv = r.recv
	}

	return send, recv, counts, nil
}
