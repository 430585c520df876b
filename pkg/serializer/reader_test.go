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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Format
	}{
		{"snapshot.json", FormatJSON},
		{"snapshot.JSON", FormatJSON},
		{"report.yaml", FormatYAML},
		{"report.yml", FormatYAML},
		{"report.table", FormatTable},
		{"report.txt", FormatTable},
		{"nofile", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestReaderJSON(t *testing.T) {
	t.Parallel()

	reader, err := NewReader(FormatJSON, strings.NewReader(`{"scanId":"scan-1","score":50}`))
	require.NoError(t, err)

	var got testReport
	require.NoError(t, reader.Deserialize(&got))
	assert.Equal(t, "scan-1", got.ScanID)
	assert.Equal(t, 50, got.Score)
}

func TestReaderYAML(t *testing.T) {
	t.Parallel()

	reader, err := NewReader(FormatYAML, strings.NewReader("scanId: scan-2\nscore: 90\n"))
	require.NoError(t, err)

	var got testReport
	require.NoError(t, reader.Deserialize(&got))
	assert.Equal(t, "scan-2", got.ScanID)
	assert.Equal(t, 90, got.Score)
}

func TestReaderRejectsTable(t *testing.T) {
	t.Parallel()

	_, err := NewReader(FormatTable, strings.NewReader("FIELD VALUE"))
	require.Error(t, err)

	_, err = NewFileReader(FormatTable, "whatever.table")
	require.Error(t, err)
}

func TestReaderRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := NewReader(Format("bogus"), strings.NewReader("{}"))
	require.Error(t, err)
}

func TestFileReaderAuto(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scanId: scan-3\nscore: 10\n"), 0600))

	reader, err := NewFileReaderAuto(path)
	require.NoError(t, err)
	defer reader.Close()

	var got testReport
	require.NoError(t, reader.Deserialize(&got))
	assert.Equal(t, "scan-3", got.ScanID)
}

func TestFileReaderMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewFileReader(FormatJSON, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"scanId":"scan-4","score":42}`), 0600))

	got, err := FromFile[testReport](path)
	require.NoError(t, err)
	assert.Equal(t, "scan-4", got.ScanID)
	assert.Equal(t, 42, got.Score)
}

func TestFromFileHTTP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"scanId":"scan-5","score":88}`))
	}))
	defer srv.Close()

	got, err := FromFile[testReport](srv.URL + "/report.json")
	require.NoError(t, err)
	assert.Equal(t, "scan-5", got.ScanID)
}

func TestReaderCloseIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "r.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	reader, err := NewFileReader(FormatJSON, path)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	require.NoError(t, reader.Close())

	var nilReader *Reader
	require.NoError(t, nilReader.Close())
}
