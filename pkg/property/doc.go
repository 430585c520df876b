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

// Package property implements a typed JSON-like value tree and the pure path
// resolver used by property checks.
//
// A cluster configuration snapshot is an arbitrarily nested tree of objects,
// sequences, and scalars. Rather than reaching into decoded map[string]any
// data with reflection, the tree is converted once (ToValue / FromJSON) into
// explicit variants, and Resolve walks it with dot-delimited paths:
//
//	tree, _ := property.FromJSON(raw)
//	v, err := property.Resolve(tree, "properties.networkProfile.networkPlugin")
//
// Resolving "pools.count" against a sequence of pools fans out and returns
// the per-element values, which is how "any node pool has X" checks are
// expressed. Absent paths are reported with an explicit NOT_FOUND error,
// never by silent type coercion.
package property
