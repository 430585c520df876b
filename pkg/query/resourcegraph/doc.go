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

// Package resourcegraph implements the query.Executor interface against the
// Azure Resource Graph REST API.
//
// Query refs resolve to the KQL texts embedded in the catalog. Requests are
// scoped to the snapshot's subscription, rate limited client-side, and
// retried with linear backoff on throttling (429) and server errors. Rows
// naming a different cluster than the scan target are filtered out before
// returning.
package resourcegraph
