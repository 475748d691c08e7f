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

// Package kinds provides one Adapter per Kubernetes resource kind the
// watcher fleet supports: the List/Watch calls against a kubernetes.Interface,
// and the projection that trims an object down to the fields worth shipping.
package kinds

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/watch"
)

// Object is the constraint every watched kind must satisfy: a pointer to a
// generated Kubernetes API type, which always carries both an ObjectMeta
// accessor and DeepCopyObject.
type Object interface {
	runtime.Object
	metav1.Object
}

// Adapter is the kind-specific capability a ResourceWatcher[T] needs: list
// the current state, open a watch stream, and project a raw object down to
// the fields worth keeping. T is always a pointer to a Kubernetes API type.
type Adapter[T Object] interface {
	// List returns every current object of kind T in the configured namespace
	// (or cluster-wide, if the adapter was built without one).
	List(ctx context.Context, opts metav1.ListOptions) ([]T, error)

	// Watch opens a watch stream of kind T.
	Watch(ctx context.Context, opts metav1.ListOptions) (watch.Interface, error)

	// Project returns a copy of obj with only the fields worth shipping
	// downstream, matching the kind's trim table.
	Project(obj T) T
}
