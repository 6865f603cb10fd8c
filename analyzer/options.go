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

import "log/slog"

// Option configures specific behavior of a [New] mpidep analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithSendTarget is an [Option] naming the function whose calls mark a send
// operation.
func WithSendTarget(name string) Option { return sendTargetOption{name: name} }

type sendTargetOption struct{ name string }

func (o sendTargetOption) apply(r *runOptions) {
	r.send = o.name
}

func (o sendTargetOption) LogAttr() slog.Attr {
	return slog.String("send", o.name)
}

// WithRecvTarget is an [Option] naming the function whose calls mark a
// receive operation.
func WithRecvTarget(name string) Option { return recvTargetOption{name: name} }

type recvTargetOption struct{ name string }

func (o recvTargetOption) apply(r *runOptions) {
	r.recv = o.name
}

func (o recvTargetOption) LogAttr() slog.Attr {
	return slog.String("recv", o.name)
}

// WithConfigFile is an [Option] naming a TOML configuration file. Explicit
// target options and flags take precedence over the file's values.
func WithConfigFile(path string) Option { return configFileOption{path: path} }

type configFileOption struct{ path string }

func (o configFileOption) apply(r *runOptions) {
	r.configFile = o.path
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}

// WithReportCounts is an [Option] that adds a diagnostic at the send target's
// declaration carrying the per-target call-site and block counters.
func WithReportCounts(enable bool) Option { return reportCountsOption{enable: enable} }

type reportCountsOption struct{ enable bool }

func (o reportCountsOption) apply(r *runOptions) {
	r.counts = o.enable
}

func (o reportCountsOption) LogAttr() slog.Attr {
	return slog.Bool("counts", o.enable)
}

// WithLogger is an [Option] directing the analyzer's debug trace, including
// per-instruction worklist events, to l. The default discards the trace.
func WithLogger(l *slog.Logger) Option { return loggerOption{logger: l} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	if o.logger != nil {
		r.logger = o.logger
	}
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
