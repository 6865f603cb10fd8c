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

// Package config loads the optional TOML configuration file naming the call
// targets to track.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// File is the on-disk configuration:
//
//	send = "MPI_Send"
//	recv = "MPI_Recv"
//	counts = true
//
// An empty or absent value leaves the corresponding default in place;
// explicit analyzer options and flags take precedence over the file.
type File struct {
	Send   string `toml:"send"`
	Recv   string `toml:"recv"`
	Counts *bool  `toml:"counts"`
}

// Load reads and decodes the configuration at path. Unknown keys are
// rejected, catching typos that would otherwise silently fall back to the
// default target names.
func Load(path string) (File, error) {
	var f File

	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return File{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	return f, nil
}
