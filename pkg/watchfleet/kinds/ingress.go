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

	extensionsv1beta1 "k8s.io/api/extensions/v1beta1"
	networkingv1 "k8s.io/api/networking/v1"
	networkingv1beta1 "k8s.io/api/networking/v1beta1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
)

// IngressV1Adapter lists and watches networking.k8s.io/v1 ingresses.
type IngressV1Adapter struct {
	client    kubernetes.Interface
	namespace string
}

// NewIngressV1Adapter builds an IngressV1Adapter. An empty namespace watches
// cluster-wide.
func NewIngressV1Adapter(client kubernetes.Interface, namespace string) *IngressV1Adapter {
	return &IngressV1Adapter{client: client, namespace: namespace}
}

func (a *IngressV1Adapter) List(ctx context.Context, opts metav1.ListOptions) ([]*networkingv1.Ingress, error) {
	list, err := a.client.NetworkingV1().Ingresses(a.namespace).List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*networkingv1.Ingress, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, &list.Items[i])
	}
	return out, nil
}

func (a *IngressV1Adapter) Watch(ctx context.Context, opts metav1.ListOptions) (watch.Interface, error) {
	return a.client.NetworkingV1().Ingresses(a.namespace).Watch(ctx, opts)
}

// Project keeps identity and the full spec; only status is dropped.
func (a *IngressV1Adapter) Project(obj *networkingv1.Ingress) *networkingv1.Ingress {
	trimmed := &networkingv1.Ingress{}
	trimmed.UID = obj.UID
	trimmed.Name = obj.Name
	trimmed.Namespace = obj.Namespace
	trimmed.Spec = obj.Spec
	return trimmed
}

// IngressV1beta1Adapter lists and watches the deprecated
// networking.k8s.io/v1beta1 ingresses, still served by some older clusters.
type IngressV1beta1Adapter struct {
	client    kubernetes.Interface
	namespace string
}

// NewIngressV1beta1Adapter builds an IngressV1beta1Adapter.
func NewIngressV1beta1Adapter(client kubernetes.Interface, namespace string) *IngressV1beta1Adapter {
	return &IngressV1beta1Adapter{client: client, namespace: namespace}
}

func (a *IngressV1beta1Adapter) List(ctx context.Context, opts metav1.ListOptions) ([]*networkingv1beta1.Ingress, error) {
	list, err := a.client.NetworkingV1beta1().Ingresses(a.namespace).List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*networkingv1beta1.Ingress, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, &list.Items[i])
	}
	return out, nil
}

func (a *IngressV1beta1Adapter) Watch(ctx context.Context, opts metav1.ListOptions) (watch.Interface, error) {
	return a.client.NetworkingV1beta1().Ingresses(a.namespace).Watch(ctx, opts)
}

func (a *IngressV1beta1Adapter) Project(obj *networkingv1beta1.Ingress) *networkingv1beta1.Ingress {
	trimmed := &networkingv1beta1.Ingress{}
	trimmed.UID = obj.UID
	trimmed.Name = obj.Name
	trimmed.Namespace = obj.Namespace
	trimmed.Spec = obj.Spec
	return trimmed
}

// IngressExtensionsV1beta1Adapter lists and watches the original
// extensions/v1beta1 ingresses, removed from newer clusters but still part
// of the closed resource-key set for compatibility with older ones.
type IngressExtensionsV1beta1Adapter struct {
	client    kubernetes.Interface
	namespace string
}

// NewIngressExtensionsV1beta1Adapter builds an
// IngressExtensionsV1beta1Adapter.
func NewIngressExtensionsV1beta1Adapter(client kubernetes.Interface, namespace string) *IngressExtensionsV1beta1Adapter {
	return &IngressExtensionsV1beta1Adapter{client: client, namespace: namespace}
}

func (a *IngressExtensionsV1beta1Adapter) List(ctx context.Context, opts metav1.ListOptions) ([]*extensionsv1beta1.Ingress, error) {
	list, err := a.client.ExtensionsV1beta1().Ingresses(a.namespace).List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*extensionsv1beta1.Ingress, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, &list.Items[i])
	}
	return out, nil
}

func (a *IngressExtensionsV1beta1Adapter) Watch(ctx context.Context, opts metav1.ListOptions) (watch.Interface, error) {
	return a.client.ExtensionsV1beta1().Ingresses(a.namespace).Watch(ctx, opts)
}

func (a *IngressExtensionsV1beta1Adapter) Project(obj *extensionsv1beta1.Ingress) *extensionsv1beta1.Ingress {
	trimmed := &extensionsv1beta1.Ingress{}
	trimmed.UID = obj.UID
	trimmed.Name = obj.Name
	trimmed.Namespace = obj.Namespace
	trimmed.Spec = obj.Spec
	return trimmed
}
