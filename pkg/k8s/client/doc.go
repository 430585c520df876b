// Copyright (c) 2025, Wellscan Authors.  All rights reserved.
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

// Package client provides a singleton Kubernetes client shared by every
// component that reads or writes cluster state, such as the cm:// ConfigMap
// serializer.
//
// The client is initialized once via sync.Once and cached; configuration is
// discovered automatically from KUBECONFIG, ~/.kube/config, or the
// in-cluster service account:
//
//	clientset, config, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// For explicit kubeconfig paths (CLI --kubeconfig flags), use
// GetKubeClientWithConfig, which bypasses the cache.
//
// Tests should inject fake clientsets (k8s.io/client-go/kubernetes/fake)
// through the Interface alias rather than touching the singleton.
package client
