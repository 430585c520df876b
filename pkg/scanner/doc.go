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

// Package scanner orchestrates full catalog scans.
//
// A Runner dispatches recommendation checks across a bounded worker pool,
// collects per-check results in catalog order, and assembles the scored
// report. Checks are isolated from one another: a panic or failure in one
// check yields a CouldNotValidate result for that check alone. Only
// cancellation of the scan context aborts the whole run.
package scanner
