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

// Package header provides common header types for wellscan data structures.
//
// The Header type is embedded in cluster snapshots, recommendation catalogs,
// and scan reports to provide consistent Kind, APIVersion, and metadata fields
// following Kubernetes-style resource conventions:
//
//	{
//	  "apiVersion": "wellscan.dev/v1alpha1",
//	  "kind": "ScanReport",
//	  "metadata": {
//	    "timestamp": "2025-08-12T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
package header
