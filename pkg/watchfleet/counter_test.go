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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_SnapshotComputesListAverages(t *testing.T) {
	c := &Counter{}
	c.RecordList(10, 1000)
	c.RecordList(20, 3000)

	snap := c.Snapshot()

	var avgLength, avgCost uint64
	for _, s := range snap {
		switch s.Name {
		case "list_avg_length":
			avgLength = s.Value
		case "list_avg_cost_time":
			avgCost = s.Value
		}
	}

	assert.EqualValues(t, 15, avgLength)  // (10+20)/2
	assert.EqualValues(t, 2000, avgCost) // (1000+3000)/2
}

func TestCounter_SnapshotResetsOnRead(t *testing.T) {
	c := &Counter{}
	c.RecordApplied()
	c.RecordApplied()
	c.RecordDeleted()

	first := c.Snapshot()
	var applied, deleted uint64
	for _, s := range first {
		switch s.Name {
		case "watch_applied":
			applied = s.Value
		case "watch_deleted":
			deleted = s.Value
		}
	}
	assert.EqualValues(t, 2, applied)
	assert.EqualValues(t, 1, deleted)

	second := c.Snapshot()
	for _, s := range second {
		assert.Zero(t, s.Value)
	}
}

func TestCounter_SnapshotZeroListCountAvoidsDivideByZero(t *testing.T) {
	c := &Counter{}
	snap := c.Snapshot()
	for _, s := range snap {
		if s.Name == "list_avg_length" || s.Name == "list_avg_cost_time" {
			assert.Zero(t, s.Value)
		}
	}
}
