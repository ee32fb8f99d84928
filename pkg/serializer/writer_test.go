/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string   `json:"name" yaml:"name"`
	Tags []string `json:"tags" yaml:"tags"`
}

func TestWriter_Serialize(t *testing.T) {
	data := sample{Name: "Chat", Tags: []string{"comm", "social"}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(FormatJSON, &buf)
		require.NoError(t, w.Serialize(t.Context(), data))
		assert.Contains(t, buf.String(), `"name": "Chat"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(FormatYAML, &buf)
		require.NoError(t, w.Serialize(t.Context(), data))
		assert.Contains(t, buf.String(), "name: Chat")
	})

	t.Run("unknown format falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(Format("xml"), &buf)
		require.NoError(t, w.Serialize(t.Context(), data))
		assert.Contains(t, buf.String(), `"name": "Chat"`)
	})
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("mapping.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("MAPPING.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("report.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("report.bin"))
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, w.Serialize(t.Context(), sample{Name: "Chat"}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Chat"`)
}

func TestFromFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sample.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: Chat\ntags: [a, b]\n"), 0644))

		got, err := FromFile[sample](path)
		require.NoError(t, err)
		assert.Equal(t, "Chat", got.Name)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sample.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"Chat"}`), 0644))

		got, err := FromFile[sample](path)
		require.NoError(t, err)
		assert.Equal(t, "Chat", got.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile[sample](filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
