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

// Package catalog defines the immutable recommendation catalog: declarative
// check definitions grouped into the five best-practice pillars.
//
// A recommendation carries exactly one check payload: a PropertyCheck that
// inspects the cluster snapshot locally, or a QueryCheck that delegates to
// the analytical query backend. The loader validates the catalog invariants
// (unique ids, known pillar, one payload) before any definition reaches the
// evaluation engine, so the engine never re-validates.
//
// A default catalog for AKS clusters, along with its analytical query texts,
// ships embedded in the binary:
//
//	c, err := catalog.Default()
//
// Custom catalogs load from YAML or JSON documents via Parse, typically read
// through pkg/serializer (file, URL, or ConfigMap sources).
package catalog
