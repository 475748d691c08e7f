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

package procscan

import (
	"crypto/sha1" //nolint:gosec // digest identity, not a security boundary
	"encoding/binary"
	"sort"
)

// Digest computes a SHA-1 digest over the pid and tags of every process in
// data, in pid-sorted order. Only pid and tags feed the hash — every other
// ProcessData field (name, cmdline, user, start time) is deliberately
// excluded, matching the original scanner's digest, which exists to detect
// membership/tag changes between scans, not full-content changes.
func Digest(data []ProcessData) [20]byte {
	sorted := make([]ProcessData, len(data))
	copy(sorted, data)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PID < sorted[j].PID })

	h := sha1.New()
	var pidBuf [8]byte
	for _, pd := range sorted {
		binary.BigEndian.PutUint64(pidBuf[:], pd.PID)
		h.Write(pidBuf[:])
		for _, tag := range pd.OSAppTags {
			h.Write([]byte(tag.Key))
			h.Write([]byte(tag.Value))
		}
	}

	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}
