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
	"context"

	"golang.org/x/sync/errgroup"
)

// FleetMember is a Watcher that can also run its own reconciliation loop,
// independent of its concrete kind. Factory.NewWatcher returns one of
// these for every resource key in the closed set.
type FleetMember interface {
	Watcher
	Run(ctx context.Context) error
}

// Fleet holds a homogeneous set of watchers and fans their reconciliation
// loops out onto their own goroutines.
//
// Unlike the teacher's pkg/snapshotter.Measure, which cancels every sibling
// collector's context the moment one returns an error via
// errgroup.WithContext, Fleet deliberately does not wire its errgroup's
// derived context back into the individual watcher loops: a single
// watcher's terminal failure must never cancel its siblings. errgroup here
// is used purely for goroutine bookkeeping (Wait joins every loop on
// shutdown), never for cross-watcher error propagation.
type Fleet struct {
	members []FleetMember
}

// NewFleet builds a Fleet from the given watchers.
func NewFleet(watchers ...FleetMember) *Fleet {
	return &Fleet{members: watchers}
}

// Watchers returns the fleet's watchers as the read-only Watcher interface,
// for callers (e.g. an HTTP status handler) that only need Kind/Version/
// Ready/Error/Entries.
func (f *Fleet) Watchers() []Watcher {
	out := make([]Watcher, len(f.members))
	for i, m := range f.members {
		out[i] = m
	}
	return out
}

// Start launches every watcher's Run loop against ctx and blocks until all
// of them return. ResourceWatcher.Run returns only once ctx is canceled and
// always returns nil. If a member's Run does return an error, the other
// loops keep running, and Start returns the first such error once every
// loop has returned.
func (f *Fleet) Start(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	for _, m := range f.members {
		m := m
		g.Go(func() error {
			return m.Run(ctx)
		})
	}
	return g.Wait()
}
