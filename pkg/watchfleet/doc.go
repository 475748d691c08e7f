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

// Package watchfleet maintains a fleet of per-kind Kubernetes resource
// watchers, each holding a compressed, trimmed snapshot of its kind's
// current cluster state.
//
// # Architecture
//
// A ResourceWatcher[T] reconciles one resource kind: it lists the current
// state once, then follows a client-go watch.Interface stream, applying
// Applied/Modified/Deleted events to its Store as they arrive. If the watch
// stream ends, it falls back to periodic relisting (every defaults.ListInterval)
// until a new watch can be established. Every watcher runs on its own
// goroutine, launched and joined by a Fleet.
//
// # Usage
//
//	factory := watchfleet.NewFactory(client)
//	w, err := factory.NewWatcher("pods", "Pod", "default", registry)
//	if err != nil {
//	    return err
//	}
//
//	fleet := watchfleet.NewFleet(w)
//	if err := fleet.Start(ctx); err != nil {
//	    return err
//	}
//
//	entries := w.Entries() // [][]byte, one RFC 1950 zlib stream per object
//
// # Resource keys
//
// The factory's resource-key set is closed: nodes, namespaces, services,
// deployments, pods, statefulsets, daemonsets, replicationcontrollers,
// replicasets, v1ingresses, v1beta1ingresses, extv1beta1ingresses, and
// routes (the last always fails with kinds.ErrUnsupportedResource).
// Requesting any other key returns a pkg/errors.ErrCodeConfig error.
package watchfleet
