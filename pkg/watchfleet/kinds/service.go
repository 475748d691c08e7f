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

// ServiceAdapter lists and watches services in a namespace.
type ServiceAdapter struct {
	client    kubernetes.Interface
	namespace string
}

// NewServiceAdapter builds a ServiceAdapter. An empty namespace watches
// cluster-wide.
func NewServiceAdapter(client kubernetes.Interface, namespace string) *ServiceAdapter {
	return &ServiceAdapter{client: client, namespace: namespace}
}

func (a *ServiceAdapter) List(ctx context.Context, opts metav1.ListOptions) ([]*corev1.Service, error) {
	list, err := a.client.CoreV1().Services(a.namespace).List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*corev1.Service, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, &list.Items[i])
	}
	return out, nil
}

func (a *ServiceAdapter) Watch(ctx context.Context, opts metav1.ListOptions) (watch.Interface, error) {
	return a.client.CoreV1().Services(a.namespace).Watch(ctx, opts)
}

// Project keeps identity, annotations, and the selector/type/clusterIP/ports
// spec fields.
func (a *ServiceAdapter) Project(obj *corev1.Service) *corev1.Service {
	trimmed := &corev1.Service{}
	trimmed.UID = obj.UID
	trimmed.Name = obj.Name
	trimmed.Namespace = obj.Namespace
	trimmed.Annotations = obj.Annotations

	trimmed.Spec.Selector = obj.Spec.Selector
	trimmed.Spec.Type = obj.Spec.Type
	trimmed.Spec.ClusterIP = obj.Spec.ClusterIP
	trimmed.Spec.Ports = obj.Spec.Ports

	return trimmed
}
