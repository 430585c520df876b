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

// Package query defines the analytical query executor contract consumed by
// query-based checks.
//
// The engine never talks to a backend directly: it hands a query ref and the
// cluster identity to an Executor and interprets the returned rows. Transport,
// authentication, rate limiting, and retries all live behind the interface.
// The resourcegraph subpackage provides the Azure Resource Graph
// implementation; StaticExecutor provides the in-memory one used offline and
// in tests.
package query
