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

package defaults

import "time"

// Kubernetes timeouts for watcher list/watch operations.
const (
	// CollectorK8sTimeout is a per-call bound for Kubernetes API requests.
	// ResourceWatcher does not apply it: its list and watch calls run under
	// the Run context and the API client's own timeouts.
	CollectorK8sTimeout = 30 * time.Second
)

// Watcher timing intervals, unchanged from the original implementation.
const (
	// ListInterval is the minimum time between full relists of a watcher
	// whose watch stream has ended.
	ListInterval = 600 * time.Second

	// RefreshInterval is reserved for a periodic full resync independent of
	// stream termination. Unused by the reconciliation loop today; kept so
	// a future full-resync policy does not need a new constant.
	RefreshInterval = 3600 * time.Second

	// SleepInterval is the pause between watch-loop retry attempts.
	SleepInterval = 5 * time.Second
)

// Scanner timing defaults for process scanning.
const (
	// ScanMinLifetime is the default minimum process uptime before it is
	// eligible for tagging. It equals the zero value of
	// ScanConfig.MinLifetimeSeconds; the scanner reads that field directly.
	ScanMinLifetime = 0 * time.Second

	// TagFetchTimeout is a bound for the external tag-fetch subprocess.
	// TagFetcher does not apply it: the subprocess runs until it exits or the
	// caller's context is canceled.
	TagFetchTimeout = 10 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading an entire
	// request, including the body.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
