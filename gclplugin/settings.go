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

package gclplugin

import mpidep "github.com/veristate/mpidep/analyzer"

// Settings represents the configuration options for an instance of the
// [Plugin].
type Settings struct {
	// Send names the function whose calls mark a send operation.
	Send *string `json:"send,omitzero"`
	// Recv names the function whose calls mark a receive operation.
	Recv *string `json:"recv,omitzero"`
	// Config is the path of a TOML configuration file.
	Config *string `json:"config,omitzero"`
	// Counts reports the call-site counters as a diagnostic.
	Counts *bool `json:"counts,omitzero"`
}

// Options converts [Settings] into a list of [mpidep.Option] for the mpidep
// analyzer. It processes settings and applies them only when explicitly set
// (non-nil).
func (s Settings) Options() []mpidep.Option {
	var opts []mpidep.Option

	opts = appendOption(opts, s.Send, mpidep.WithSendTarget)
	opts = appendOption(opts, s.Recv, mpidep.WithRecvTarget)
	opts = appendOption(opts, s.Config, mpidep.WithConfigFile)
	opts = appendOption(opts, s.Counts, mpidep.WithReportCounts)

	return opts
}

// appendOption appends a non-nil setting to an [mpidep.Option] list.
func appendOption[T any](opts []mpidep.Option, value *T, constructor func(T) mpidep.Option) []mpidep.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
