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

// ReplicationControllerAdapter lists and watches replicationcontrollers in a
// namespace.
type ReplicationControllerAdapter struct {
	client    kubernetes.Interface
	namespace string
}

// NewReplicationControllerAdapter builds a ReplicationControllerAdapter. An
// empty namespace watches cluster-wide.
func NewReplicationControllerAdapter(client kubernetes.Interface, namespace string) *ReplicationControllerAdapter {
	return &ReplicationControllerAdapter{client: client, namespace: namespace}
}

func (a *ReplicationControllerAdapter) List(ctx context.Context, opts metav1.ListOptions) ([]*corev1.ReplicationController, error) {
	list, err := a.client.CoreV1().ReplicationControllers(a.namespace).List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*corev1.ReplicationController, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, &list.Items[i])
	}
	return out, nil
}

func (a *ReplicationControllerAdapter) Watch(ctx context.Context, opts metav1.ListOptions) (watch.Interface, error) {
	return a.client.CoreV1().ReplicationControllers(a.namespace).Watch(ctx, opts)
}

// Project keeps identity and the replicas/selector/template spec fields.
func (a *ReplicationControllerAdapter) Project(obj *corev1.ReplicationController) *corev1.ReplicationController {
	trimmed := &corev1.ReplicationController{}
	trimmed.UID = obj.UID
	trimmed.Name = obj.Name
	trimmed.Namespace = obj.Namespace

	trimmed.Spec.Replicas = obj.Spec.Replicas
	trimmed.Spec.Selector = obj.Spec.Selector
	trimmed.Spec.Template = obj.Spec.Template

	return trimmed
}
