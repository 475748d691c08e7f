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

// Package procscan scans host processes through procfs, filters them
// through a configurable rule set, resolves their owning username from
// the /etc/passwd visible in their own mount namespace, and attaches
// tags fetched from an external command.
//
// # Pipeline
//
// Scanner.Scan applies, per process: an uptime filter (ScanConfig.MinLifetime()),
// rule evaluation (first match wins; a process matching no rule is
// excluded entirely), username resolution via a scan-local PasswordCache,
// tag attachment from a TagFetcher run once per scan, and a caller-supplied
// PostScanHook over the final set.
//
// # Digest
//
// Digest computes a SHA-1 digest over (pid, tags) only, pid-sorted — it
// exists to cheaply detect membership or tag changes between scans, not
// full-content drift.
package procscan
