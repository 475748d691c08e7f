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

package watchfleet

import (
	cnserrors "github.com/NVIDIA/cluster-inventory-watcher/pkg/errors"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/stats"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/watchfleet/kinds"

	"k8s.io/client-go/kubernetes"
	"k8s.io/utils/clock"
)

// Factory builds FleetMembers for the closed set of supported resource
// keys, registering each one's telemetry with a stats.Registry.
type Factory struct {
	client kubernetes.Interface
	clock  clock.Clock
}

// NewFactory builds a Factory using the real wall clock. Use NewFactoryWithClock
// in tests to substitute a clock.FakeClock.
func NewFactory(client kubernetes.Interface) *Factory {
	return NewFactoryWithClock(client, clock.RealClock{})
}

// NewFactoryWithClock builds a Factory with an explicit clock.Clock.
func NewFactoryWithClock(client kubernetes.Interface, clk clock.Clock) *Factory {
	return &Factory{client: client, clock: clk}
}

// NewWatcher builds the FleetMember for resourceKey, labels it kindLabel,
// scopes it to namespace (empty for cluster-wide kinds, ignored for Node
// and Namespace), and registers its counters with reg. resourceKey must be
// one of the closed set below; any other value returns a
// pkg/errors.ErrCodeConfig error.
func (f *Factory) NewWatcher(resourceKey, kindLabel, namespace string, reg stats.Registry) (FleetMember, error) {
	switch resourceKey {
	case "nodes":
		return build(kinds.NewNodeAdapter(f.client), kindLabel, f.clock, reg), nil
	case "namespaces":
		return build(kinds.NewNamespaceAdapter(f.client), kindLabel, f.clock, reg), nil
	case "services":
		return build(kinds.NewServiceAdapter(f.client, namespace), kindLabel, f.clock, reg), nil
	case "deployments":
		return build(kinds.NewDeploymentAdapter(f.client, namespace), kindLabel, f.clock, reg), nil
	case "pods":
		return build(kinds.NewPodAdapter(f.client, namespace), kindLabel, f.clock, reg), nil
	case "statefulsets":
		return build(kinds.NewStatefulSetAdapter(f.client, namespace), kindLabel, f.clock, reg), nil
	case "daemonsets":
		return build(kinds.NewDaemonSetAdapter(f.client, namespace), kindLabel, f.clock, reg), nil
	case "replicationcontrollers":
		return build(kinds.NewReplicationControllerAdapter(f.client, namespace), kindLabel, f.clock, reg), nil
	case "replicasets":
		return build(kinds.NewReplicaSetAdapter(f.client, namespace), kindLabel, f.clock, reg), nil
	case "v1ingresses":
		return build(kinds.NewIngressV1Adapter(f.client, namespace), kindLabel, f.clock, reg), nil
	case "v1beta1ingresses":
		return build(kinds.NewIngressV1beta1Adapter(f.client, namespace), kindLabel, f.clock, reg), nil
	case "extv1beta1ingresses":
		return build(kinds.NewIngressExtensionsV1beta1Adapter(f.client, namespace), kindLabel, f.clock, reg), nil
	case "routes":
		return build(kinds.NewRouteAdapter(f.client, namespace), kindLabel, f.clock, reg), nil
	default:
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeConfig, "unknown resource key",
			map[string]any{"resourceKey": resourceKey})
	}
}

// build instantiates a ResourceWatcher[T] for one adapter and registers a
// non-owning counter accessor with reg, bound only to the watcher's atomic
// counter fields — never to the watcher itself — so the registry can never
// extend the watcher's lifetime.
func build[T kinds.Object](adapter kinds.Adapter[T], kindLabel string, clk clock.Clock, reg stats.Registry) FleetMember {
	w := NewResourceWatcher(adapter, kindLabel, clk)
	if reg != nil {
		reg.Register(kindLabel, w.CounterSource())
	}
	return w
}
