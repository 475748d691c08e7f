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

	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
)

// DaemonSetAdapter lists and watches daemonsets in a namespace.
type DaemonSetAdapter struct {
	client    kubernetes.Interface
	namespace string
}

// NewDaemonSetAdapter builds a DaemonSetAdapter. An empty namespace watches
// cluster-wide.
func NewDaemonSetAdapter(client kubernetes.Interface, namespace string) *DaemonSetAdapter {
	return &DaemonSetAdapter{client: client, namespace: namespace}
}

func (a *DaemonSetAdapter) List(ctx context.Context, opts metav1.ListOptions) ([]*appsv1.DaemonSet, error) {
	list, err := a.client.AppsV1().DaemonSets(a.namespace).List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*appsv1.DaemonSet, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, &list.Items[i])
	}
	return out, nil
}

func (a *DaemonSetAdapter) Watch(ctx context.Context, opts metav1.ListOptions) (watch.Interface, error) {
	return a.client.AppsV1().DaemonSets(a.namespace).Watch(ctx, opts)
}

// Project keeps identity, labels, and the selector/template spec fields.
func (a *DaemonSetAdapter) Project(obj *appsv1.DaemonSet) *appsv1.DaemonSet {
	trimmed := &appsv1.DaemonSet{}
	trimmed.UID = obj.UID
	trimmed.Name = obj.Name
	trimmed.Namespace = obj.Namespace
	trimmed.Labels = obj.Labels

	trimmed.Spec.Selector = obj.Spec.Selector
	trimmed.Spec.Template = obj.Spec.Template

	return trimmed
}
