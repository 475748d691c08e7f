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

// Package kinds holds the one Adapter per resource kind the watcher fleet
// supports: Pod, Node, Namespace, Service, Deployment, DaemonSet,
// StatefulSet, ReplicaSet, ReplicationController, three generations of
// Ingress, and a stub Route adapter for the one kind this module cannot
// list or watch without an unavailable OpenShift client.
//
// Every adapter implements Adapter[T], so pkg/watchfleet.Factory can build a
// ResourceWatcher[T] generically regardless of which concrete kind it holds.
// Projections here are a direct translation of the original Rust
// Trimmable::trim implementations: keep identity and the handful of
// spec/status fields a downstream consumer needs, drop everything else.
package kinds
