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

// Package stats provides a tiny registry interface that watchers publish
// reset-on-read counters through; the process scanner registers none. It stands in for
// the external stats collector the original implementation reports to,
// which is out of scope for this module.
//
// PrometheusRegistry is the one concrete implementation: it exposes every
// registered source as a Prometheus gauge, snapshotted fresh on each
// /metrics scrape via a custom prometheus.Collector, so callers outside
// this process still get the counters without this module owning a push
// pipeline to an external collector.
package stats
