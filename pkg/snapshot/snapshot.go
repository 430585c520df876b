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

package snapshot

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/wellscan/wellscan/pkg/errors"
	"github.com/wellscan/wellscan/pkg/header"
	"github.com/wellscan/wellscan/pkg/property"
)

const (
	// APIVersion is the API version for cluster snapshot resources.
	APIVersion = "wellscan.dev/v1alpha1"
)

// Identity holds the coordinates that locate a cluster in its cloud estate.
// Query executors use these to scope analytical queries to the right cluster.
type Identity struct {
	// SubscriptionID is the cloud subscription owning the cluster.
	SubscriptionID string `json:"subscriptionId" yaml:"subscriptionId"`

	// ResourceGroup is the resource group containing the cluster.
	ResourceGroup string `json:"resourceGroup,omitempty" yaml:"resourceGroup,omitempty"`

	// ClusterName is the cluster's display name.
	ClusterName string `json:"clusterName" yaml:"clusterName"`

	// ClusterID is the fully qualified resource identifier, when known.
	ClusterID string `json:"clusterId,omitempty" yaml:"clusterId,omitempty"`

	// Location is the cloud region hosting the cluster.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// ClusterSnapshot is one cluster's configuration captured at scan time.
// The Config tree is opaque to the engine: checks address into it with
// property paths, and the engine never mutates it.
type ClusterSnapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// Identity locates the cluster the snapshot was taken from.
	Identity Identity `json:"identity" yaml:"identity"`

	// Config is the raw configuration tree (object/sequence/scalar variants).
	Config property.Value `json:"config" yaml:"config"`
}

// New creates an initialized ClusterSnapshot for the given identity and
// configuration tree.
func New(id Identity, config property.Value, version string) *ClusterSnapshot {
	s := &ClusterSnapshot{
		Identity: id,
		Config:   config,
	}
	s.Init(header.KindClusterSnapshot, APIVersion, version)
	return s
}

// Validate checks that the snapshot is usable by the engine.
func (s *ClusterSnapshot) Validate() error {
	if s == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "snapshot cannot be nil")
	}
	if s.Identity.ClusterName == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "snapshot identity is missing cluster name")
	}
	if s.Config == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "snapshot has no configuration tree")
	}
	return nil
}

// UnmarshalJSON decodes the snapshot, converting the raw config into the
// typed value tree.
func (s *ClusterSnapshot) UnmarshalJSON(data []byte) error {
	var tmp struct {
		header.Header `json:",inline"`
		Identity      Identity `json:"identity"`
		Config        any      `json:"config"`
	}

	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	s.Header = tmp.Header
	s.Identity = tmp.Identity
	if tmp.Config != nil {
		s.Config = property.ToValue(tmp.Config)
	}
	return nil
}

// UnmarshalYAML decodes the snapshot, converting the raw config into the
// typed value tree.
func (s *ClusterSnapshot) UnmarshalYAML(node *yaml.Node) error {
	var tmp struct {
		header.Header `yaml:",inline"`
		Identity      Identity `yaml:"identity"`
		Config        any      `yaml:"config"`
	}

	if err := node.Decode(&tmp); err != nil {
		return err
	}

	s.Header = tmp.Header
	s.Identity = tmp.Identity
	if tmp.Config != nil {
		s.Config = property.ToValue(normalizeYAML(tmp.Config))
	}
	return nil
}

// normalizeYAML rewrites map[any]any trees (produced by permissive YAML
// decoders) into map[string]any so ToValue sees a uniform shape.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, child := range val {
			key, ok := k.(string)
			if !ok {
				continue
			}
			m[key] = normalizeYAML(child)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, child := range val {
			m[k] = normalizeYAML(child)
		}
		return m
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = normalizeYAML(child)
		}
		return out
	default:
		return v
	}
}
