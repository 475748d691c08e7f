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

// Package k8s provides Kubernetes cluster integration.
//
// # Sub-packages
//
// client: singleton Kubernetes clientset with automatic authentication.
//
//	clientset, config, err := client.GetKubeClient()
//	if err != nil {
//	    return err
//	}
//	// Use clientset for API operations
//
// The watcher fleet's own use of the clientset — building typed List/Watch
// calls per resource kind — lives in pkg/watchfleet, not here; this package
// only owns client construction and authentication.
//
// # Architecture
//
//   - Singleton Pattern: the client package uses sync.Once to ensure a
//     single Kubernetes client instance is shared across the application,
//     preventing connection exhaustion and reducing API server load.
//
//   - Automatic Authentication: the client automatically detects whether
//     it's running in-cluster (using a service account) or out-of-cluster
//     (using a kubeconfig file).
//
// # Usage
//
//	import "github.com/NVIDIA/cluster-inventory-watcher/pkg/k8s/client"
//
//	clientset, _, err := client.GetKubeClient()
//
// # Thread Safety
//
// client uses sync.Once for thread-safe initialization; the returned
// clientset is safe for concurrent use by every watcher goroutine.
package k8s
