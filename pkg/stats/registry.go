// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package stats

// Counter is one named, reset-on-read telemetry value.
type Counter struct {
	Name  string
	Value uint64
}

// Source returns the current set of counters for one registered producer,
// resetting each value as a side effect of reading it.
type Source func() []Counter

// Registry accepts telemetry sources tagged with a kind label. It never
// holds anything but the Source closure itself, so registering with it
// never extends the lifetime of whatever state the closure reads —
// the Go-idiomatic reading of a weak-reference counter registration: the
// registry cannot keep a watcher alive because it never references the
// watcher, only a function bound to its already-independent atomic fields.
type Registry interface {
	Register(kind string, source Source)
}

// NoopRegistry discards every registration. Useful in tests and for
// embedders that don't want Prometheus wiring.
type NoopRegistry struct{}

// Register implements Registry by doing nothing.
func (NoopRegistry) Register(string, Source) {}
