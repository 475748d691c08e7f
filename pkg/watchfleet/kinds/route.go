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

package kinds

import (
	"context"
	"errors"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
)

// ErrUnsupportedResource is returned by RouteAdapter's List and Watch calls.
// OpenShift's route.openshift.io/v1 Route type has no client-go typed
// client; listing or watching it would require the generated OpenShift
// clientset, which is not in this module's dependency set.
var ErrUnsupportedResource = errors.New("resource kind has no client-go support in this build")

// Route is a minimal local stand-in for route.openshift.io/v1.Route, just
// enough to satisfy the Object constraint so "routes" can participate in the
// closed resource-key switch without an OpenShift client dependency.
type Route struct {
	metav1.TypeMeta
	metav1.ObjectMeta
}

// DeepCopyObject implements runtime.Object.
func (r *Route) DeepCopyObject() runtime.Object {
	if r == nil {
		return nil
	}
	out := &Route{TypeMeta: r.TypeMeta}
	r.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	return out
}

// GetObjectKind implements runtime.Object.
func (r *Route) GetObjectKind() schema.ObjectKind {
	return &r.TypeMeta
}

// RouteAdapter always fails List/Watch with ErrUnsupportedResource; it
// exists so the Factory's resource-key switch stays exhaustive over the
// documented closed set even though this one kind cannot be wired end to
// end without an external clientset.
type RouteAdapter struct{}

// NewRouteAdapter builds a RouteAdapter.
func NewRouteAdapter(_ kubernetes.Interface, _ string) *RouteAdapter {
	return &RouteAdapter{}
}

func (a *RouteAdapter) List(_ context.Context, _ metav1.ListOptions) ([]*Route, error) {
	return nil, ErrUnsupportedResource
}

func (a *RouteAdapter) Watch(_ context.Context, _ metav1.ListOptions) (watch.Interface, error) {
	return nil, ErrUnsupportedResource
}

func (a *RouteAdapter) Project(obj *Route) *Route {
	trimmed := &Route{}
	trimmed.UID = obj.UID
	trimmed.Name = obj.Name
	trimmed.Namespace = obj.Namespace
	return trimmed
}
