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

// Package defaults provides centralized configuration constants for the
// watcher fleet and process scanner.
//
// This package defines timeout and interval values used across the codebase.
// Centralizing these values ensures consistency and makes tuning easier.
//
// # Timeout Categories
//
// Values are organized by component:
//
//   - Kubernetes timeouts: for a watcher's list/watch calls
//   - Watcher intervals: relist/sleep timing for the reconciliation loop
//   - Scanner timeouts: for the external tag-fetch subprocess
//   - Server timeouts: for the status/metrics HTTP server
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/cluster-inventory-watcher/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorK8sTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - Watcher list calls: 30s
//   - Watch-loop relist on stream end: every 600s (ListInterval)
//   - Watch-loop retry sleep: 5s (SleepInterval)
//   - Server shutdown: 30s for graceful shutdown
package defaults
