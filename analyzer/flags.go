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

import "flag"

// registerFlags binds the analyzer's configuration to command line flag
// values.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	flags.StringVar(&r.send, "send", r.send,
		`function whose calls mark a send operation (default "`+DefaultSendTarget+`")`)
	flags.StringVar(&r.recv, "recv", r.recv,
		`function whose calls mark a receive operation (default "`+DefaultRecvTarget+`")`)
	flags.StringVar(&r.configFile, "config", r.configFile,
		"path of a TOML configuration file")
	flags.BoolVar(&r.counts, "counts", r.counts,
		"report the call-site counters as a diagnostic")
}
