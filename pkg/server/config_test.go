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

package server

import (
	"testing"
	"time"

	"github.com/wellscan/wellscan/pkg/defaults"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.RateLimit != 100 {
		t.Errorf("expected rate limit 100, got %v", cfg.RateLimit)
	}
	if cfg.RateLimitBurst != 200 {
		t.Errorf("expected burst 200, got %d", cfg.RateLimitBurst)
	}
	if cfg.MaxBodyBytes != 10<<20 {
		t.Errorf("expected max body 10MiB, got %d", cfg.MaxBodyBytes)
	}
	if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
		t.Errorf("expected shutdown timeout %v, got %v",
			defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
	}
}

func TestNewConfigPortOverride(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg := NewConfig()
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
}

func TestNewConfigInvalidPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := NewConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestNewConfigShutdownTimeoutOverride(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "45")

	cfg := NewConfig()
	if cfg.ShutdownTimeout != 45*time.Second {
		t.Errorf("expected shutdown timeout 45s, got %v", cfg.ShutdownTimeout)
	}
}

func TestNewConfigNegativeShutdownIgnored(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-5")

	cfg := NewConfig()
	if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
		t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}
