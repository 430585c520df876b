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

// Package errors provides structured error types shared across wellscan components.
//
// Errors carry a machine-readable ErrorCode alongside the human-readable message,
// so callers can branch on failure class without string matching:
//
//	v, err := property.Resolve(tree, path)
//	if errors.IsNotFound(err) {
//	    // data absent, not a hard failure
//	}
//
// StructuredError supports errors.Is/errors.As through Unwrap, and optional
// context maps for diagnostics:
//
//	return errors.WrapWithContext(errors.ErrCodeQueryFailed,
//	    "resource graph request failed", err,
//	    map[string]any{"query": ref, "subscription": id.SubscriptionID})
package errors
