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

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
)

// NamespaceAdapter lists and watches namespaces cluster-wide.
type NamespaceAdapter struct {
	client kubernetes.Interface
}

// NewNamespaceAdapter builds a NamespaceAdapter.
func NewNamespaceAdapter(client kubernetes.Interface) *NamespaceAdapter {
	return &NamespaceAdapter{client: client}
}

func (a *NamespaceAdapter) List(ctx context.Context, opts metav1.ListOptions) ([]*corev1.Namespace, error) {
	list, err := a.client.CoreV1().Namespaces().List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*corev1.Namespace, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, &list.Items[i])
	}
	return out, nil
}

func (a *NamespaceAdapter) Watch(ctx context.Context, opts metav1.ListOptions) (watch.Interface, error) {
	return a.client.CoreV1().Namespaces().Watch(ctx, opts)
}

// Project keeps only identity; namespaces carry no other field worth shipping.
func (a *NamespaceAdapter) Project(obj *corev1.Namespace) *corev1.Namespace {
	trimmed := &corev1.Namespace{}
	trimmed.UID = obj.UID
	trimmed.Name = obj.Name
	return trimmed
}
