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

// NodeAdapter lists and watches nodes cluster-wide; nodes have no namespace.
type NodeAdapter struct {
	client kubernetes.Interface
}

// NewNodeAdapter builds a NodeAdapter.
func NewNodeAdapter(client kubernetes.Interface) *NodeAdapter {
	return &NodeAdapter{client: client}
}

func (a *NodeAdapter) List(ctx context.Context, opts metav1.ListOptions) ([]*corev1.Node, error) {
	list, err := a.client.CoreV1().Nodes().List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*corev1.Node, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, &list.Items[i])
	}
	return out, nil
}

func (a *NodeAdapter) Watch(ctx context.Context, opts metav1.ListOptions) (watch.Interface, error) {
	return a.client.CoreV1().Nodes().Watch(ctx, opts)
}

// Project keeps identity, labels, addresses, conditions, capacity, and the
// pod CIDR.
func (a *NodeAdapter) Project(obj *corev1.Node) *corev1.Node {
	trimmed := &corev1.Node{}
	trimmed.UID = obj.UID
	trimmed.Name = obj.Name
	trimmed.Labels = obj.Labels

	trimmed.Status.Addresses = obj.Status.Addresses
	trimmed.Status.Conditions = obj.Status.Conditions
	trimmed.Status.Capacity = obj.Status.Capacity

	trimmed.Spec.PodCIDR = obj.Spec.PodCIDR

	return trimmed
}
