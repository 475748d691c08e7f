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

// PodAdapter lists and watches pods, trimmed to identity, owner, creation
// time, labels, and the status fields a placement decision needs.
type PodAdapter struct {
	client    kubernetes.Interface
	namespace string
}

// NewPodAdapter builds a PodAdapter. An empty namespace watches cluster-wide.
func NewPodAdapter(client kubernetes.Interface, namespace string) *PodAdapter {
	return &PodAdapter{client: client, namespace: namespace}
}

func (a *PodAdapter) List(ctx context.Context, opts metav1.ListOptions) ([]*corev1.Pod, error) {
	list, err := a.client.CoreV1().Pods(a.namespace).List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*corev1.Pod, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, &list.Items[i])
	}
	return out, nil
}

func (a *PodAdapter) Watch(ctx context.Context, opts metav1.ListOptions) (watch.Interface, error) {
	return a.client.CoreV1().Pods(a.namespace).Watch(ctx, opts)
}

// Project keeps identity, owner references, creation timestamp, labels, and
// the status fields (host IP, pod IP, conditions) worth shipping downstream.
func (a *PodAdapter) Project(obj *corev1.Pod) *corev1.Pod {
	trimmed := &corev1.Pod{}
	trimmed.UID = obj.UID
	trimmed.Name = obj.Name
	trimmed.Namespace = obj.Namespace
	trimmed.OwnerReferences = obj.OwnerReferences
	trimmed.CreationTimestamp = obj.CreationTimestamp
	trimmed.Labels = obj.Labels

	trimmed.Status.HostIP = obj.Status.HostIP
	trimmed.Status.PodIP = obj.Status.PodIP
	trimmed.Status.Conditions = obj.Status.Conditions

	return trimmed
}
