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

package watchfleet

import (
	"sync/atomic"

	"github.com/NVIDIA/cluster-inventory-watcher/pkg/stats"
)

// Counter accumulates one ResourceWatcher's telemetry between scrapes. Every
// field resets to zero when read through Snapshot, mirroring the original
// WatcherCounter's swap(0, Ordering::Relaxed) pattern.
type Counter struct {
	listCount       atomic.Uint32
	listLength      atomic.Uint32
	listCostTimeSum atomic.Uint64 // nanoseconds
	listError       atomic.Uint32
	watchApplied    atomic.Uint32
	watchDeleted    atomic.Uint32
	watchRestarted  atomic.Uint32
}

// RecordList folds one list call's length and wall-clock cost into the
// running averages reported by Snapshot.
func (c *Counter) RecordList(length int, costNanos int64) {
	c.listCount.Add(1)
	c.listLength.Add(uint32(length))
	c.listCostTimeSum.Add(uint64(costNanos))
}

// RecordListError increments the list-error count.
func (c *Counter) RecordListError() {
	c.listError.Add(1)
}

// RecordApplied increments the watch-applied count.
func (c *Counter) RecordApplied() {
	c.watchApplied.Add(1)
}

// RecordDeleted increments the watch-deleted count.
func (c *Counter) RecordDeleted() {
	c.watchDeleted.Add(1)
}

// RecordRestarted increments the watch-restarted count.
func (c *Counter) RecordRestarted() {
	c.watchRestarted.Add(1)
}

// Snapshot reads and resets every field, returning the six counters a
// watcher reports: list_avg_length, list_avg_cost_time, list_error,
// watch_applied, watch_deleted, watch_restarted.
func (c *Counter) Snapshot() []stats.Counter {
	listCount := c.listCount.Swap(0)
	listLength := c.listLength.Swap(0)
	listCostSum := c.listCostTimeSum.Swap(0)

	var avgLength, avgCostTime uint64
	if listCount > 0 {
		avgLength = uint64(listLength) / uint64(listCount)
		avgCostTime = listCostSum / uint64(listCount)
	}

	return []stats.Counter{
		{Name: "list_avg_length", Value: avgLength},
		{Name: "list_avg_cost_time", Value: avgCostTime},
		{Name: "list_error", Value: uint64(c.listError.Swap(0))},
		{Name: "watch_applied", Value: uint64(c.watchApplied.Swap(0))},
		{Name: "watch_deleted", Value: uint64(c.watchDeleted.Swap(0))},
		{Name: "watch_restarted", Value: uint64(c.watchRestarted.Swap(0))},
	}
}
