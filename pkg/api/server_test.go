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

package api

import (
	"testing"
)

// Serve() is a blocking function that runs until shutdown, so it is covered
// by end-to-end tests rather than unit tests. These tests verify the wiring
// that Serve composes.

func TestConstants(t *testing.T) {
	if name != "wellscand" {
		t.Errorf("name = %q, want %q", name, "wellscand")
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}
	if version == "" {
		t.Error("version must not be empty")
	}
}

func TestNewExecutorWithoutToken(t *testing.T) {
	t.Setenv(tokenEnvVar, "")

	if exec := newExecutor(); exec != nil {
		t.Error("expected nil executor without a token")
	}
}

func TestNewExecutorWithToken(t *testing.T) {
	t.Setenv(tokenEnvVar, "tok-123")

	if exec := newExecutor(); exec == nil {
		t.Fatal("expected executor when token is configured")
	}
}
