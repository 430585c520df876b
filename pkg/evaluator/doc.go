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

// Package evaluator turns one recommendation plus one cluster snapshot into
// a verdict.
//
// Every recommendation yields exactly one of three statuses: Passed, Failed,
// or CouldNotValidate. The last covers everything that prevents a verdict
// (absent property, empty fan-out, malformed definition, query backend
// failure) so partial data degrades a scan's coverage, never its integrity.
package evaluator
