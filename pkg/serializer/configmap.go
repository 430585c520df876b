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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/wellscan/wellscan/pkg/defaults"
	"github.com/wellscan/wellscan/pkg/header"
	"github.com/wellscan/wellscan/pkg/k8s/client"
)

const (
	// ConfigMapURIScheme is the URI scheme for ConfigMap sources and
	// destinations (cm://namespace/name).
	ConfigMapURIScheme = "cm://"

	// configMapFormatKey is the ConfigMap data key holding the content format.
	configMapFormatKey = "format"

	fieldManager = "wellscan"
)

// configMapDataKey returns the ConfigMap data key for content in the given
// format (e.g. "content.yaml").
func configMapDataKey(format Format) string {
	ext := string(format)
	if format == FormatTable {
		ext = "txt"
	}
	return fmt.Sprintf("content.%s", ext)
}

// ConfigMapWriter writes serialized resources to a Kubernetes ConfigMap,
// creating it if needed via Server-Side Apply.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
}

// NewConfigMapWriter creates a ConfigMapWriter targeting the given namespace
// and name in the given format.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    format,
	}
}

// Serialize writes the resource to the ConfigMap. The resulting ConfigMap
// holds the serialized content under content.{json|yaml|txt}, plus format
// and timestamp keys.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	// Bounded write; the apply can stall behind client-side rate limiting
	// after heavy API usage.
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	k8sClient, _, err := client.GetKubeClient()
	if err != nil {
		return fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	content, err := marshal(w.format, v)
	if err != nil {
		return fmt.Errorf("failed to serialize content: %w", err)
	}

	kind := header.KindScanReport.String()
	version := "unknown"
	timestamp := time.Now().UTC().Format(time.RFC3339)
	if headed, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		if k := headed.GetKind(); k != "" {
			kind = k.String()
		}
		metadata := headed.GetMetadata()
		if ver, exists := metadata["version"]; exists {
			version = ver
		}
		if ts, exists := metadata["timestamp"]; exists {
			timestamp = ts
		}
	}

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "wellscan",
			"app.kubernetes.io/component": kind,
			"app.kubernetes.io/version":   version,
		}).
		WithData(map[string]string{
			configMapDataKey(w.format): string(content),
			configMapFormatKey:         string(w.format),
			"timestamp":                timestamp,
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"kind", kind,
		"format", w.format)

	// Server-Side Apply gives atomic create-or-update without the
	// get-then-update race. Force takes ownership from prior field managers.
	_, err = k8sClient.CoreV1().ConfigMaps(w.namespace).Apply(
		writeCtx,
		configMap,
		metav1.ApplyOptions{
			FieldManager: fieldManager,
			Force:        true,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap: %w", err)
	}

	return nil
}

// Close is a no-op; it exists to satisfy the Closer interface.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// ParseConfigMapURI parses a cm://namespace/name URI into its namespace and
// name components.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	path := strings.TrimPrefix(uri, ConfigMapURIScheme)
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
