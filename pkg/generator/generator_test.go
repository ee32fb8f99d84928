/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"archive/zip"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarlabs/aslo-catalog/pkg/checksum"
	"github.com/sugarlabs/aslo-catalog/pkg/index"
	"github.com/sugarlabs/aslo-catalog/pkg/report"
	"github.com/sugarlabs/aslo-catalog/pkg/site"
)

func writeArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

// seedBundles populates a source directory with the standard test fixtures.
func seedBundles(t *testing.T, src string) {
	t.Helper()

	writeArchive(t, filepath.Join(src, "chat.xo"), map[string]string{
		"Chat.activity/activity/activity.info":     "[Activity]\nname = Chat\nsummary = Talk\ntag = comm;social\nicon = activity-chat\n",
		"Chat.activity/activity/activity-chat.svg": "<svg/>",
	})
	writeArchive(t, filepath.Join(src, "maze.xo"), map[string]string{
		"Maze.activity/activity/activity.info": "name = Maze\nicon = activity-maze\n",
	})
	writeArchive(t, filepath.Join(src, "anon.xo"), map[string]string{
		"Anon.activity/activity/activity.info": "summary = who am i\n",
	})
	writeArchive(t, filepath.Join(src, "noinfo.xo"), map[string]string{
		"README": "nothing here",
	})
	writeArchive(t, filepath.Join(src, "twoinfo.xo"), map[string]string{
		"A.activity/activity/activity.info": "name = A\n",
		"B.activity/activity/activity.info": "name = B\n",
	})
	require.NoError(t, os.WriteFile(filepath.Join(src, "broken.xo"), []byte("not a zip"), 0644))
}

func TestBuild(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	seedBundles(t, src)

	g, err := New(WithVersion("test"))
	require.NoError(t, err)

	rep, err := g.Build(t.Context(), src, dst)
	require.NoError(t, err)

	assert.Equal(t, 6, rep.Discovered)
	assert.Equal(t, 3, rep.Records) // anon, chat, maze in lexical order

	// gating buckets
	assert.Equal(t, []string{filepath.Join(src, "broken.xo")}, rep.Paths(report.BucketNotArchive))
	assert.ElementsMatch(t,
		[]string{filepath.Join(src, "noinfo.xo"), filepath.Join(src, "twoinfo.xo")},
		rep.Paths(report.BucketDescriptorCount))

	// non-fatal buckets
	assert.Equal(t, []string{filepath.Join(src, "maze.xo")}, rep.Paths(report.BucketIconMissing))
	assert.Equal(t, []string{filepath.Join(src, "anon.xo")}, rep.Paths(report.BucketMissingName))
	assert.Empty(t, rep.Paths(report.BucketMisc))

	// records and entries are in the same order at equal positions
	infoData, err := os.ReadFile(filepath.Join(dst, site.InfoFileName))
	require.NoError(t, err)
	var records []map[string]string
	require.NoError(t, json.Unmarshal(infoData, &records))

	indexData, err := os.ReadFile(filepath.Join(dst, site.ScriptsDir, site.IndexFileName))
	require.NoError(t, err)
	entries, err := index.ParseDocument(indexData)
	require.NoError(t, err)

	require.Len(t, records, 3)
	require.Len(t, entries, 3)
	for i := range records {
		assert.Equal(t, records[i]["name"], entries[i].Name)
	}

	// the named-with-icon bundle got its full outputs
	assert.FileExists(t, filepath.Join(dst, site.IconsDir, "Chat.svg"))
	assert.FileExists(t, filepath.Join(dst, site.BundlesDir, "Chat.xo"))
	assert.FileExists(t, filepath.Join(dst, site.AppDir, "Chat.html"))

	// icon-missing is non-fatal: maze is still copied and paged
	assert.FileExists(t, filepath.Join(dst, site.BundlesDir, "Maze.xo"))
	assert.FileExists(t, filepath.Join(dst, site.AppDir, "Maze.html"))
	assert.NoFileExists(t, filepath.Join(dst, site.IconsDir, "Maze.svg"))

	// the unnamed bundle keeps its index position but produced no copy and no page
	assert.NoFileExists(t, filepath.Join(dst, site.AppDir, ".html"))
	assert.Equal(t, "", entries[0].Name)
	assert.Equal(t, "who am i", entries[0].Summary)

	// report files always written
	for _, bucket := range report.Buckets() {
		assert.FileExists(t, filepath.Join(dst, bucket.FileName()))
	}

	assert.Greater(t, rep.TotalFiles, 0)
	assert.Greater(t, rep.TotalSize, int64(0))
}

func TestBuild_ExampleScenario(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeArchive(t, filepath.Join(src, "chat.xo"), map[string]string{
		"Chat.activity/activity/activity.info": "name = Chat\nsummary = Talk\ntag = comm;social\n",
	})

	g, err := New()
	require.NoError(t, err)
	_, err = g.Build(t.Context(), src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dst, site.ScriptsDir, site.IndexFileName))
	require.NoError(t, err)
	entries, err := index.ParseDocument(data)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, index.Entry{
		Name:        "Chat",
		Summary:     "Talk",
		Description: "",
		Tags:        []string{"comm", "social"},
	}, entries[0])
}

func TestBuild_EmptySource(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	g, err := New()
	require.NoError(t, err)

	rep, err := g.Build(t.Context(), src, dst)
	require.NoError(t, err)

	assert.Equal(t, 0, rep.Discovered)
	assert.False(t, rep.HasErrors())

	infoData, err := os.ReadFile(filepath.Join(dst, site.InfoFileName))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(infoData))

	for _, bucket := range report.Buckets() {
		assert.FileExists(t, filepath.Join(dst, bucket.FileName()))
	}
}

func TestBuild_WithChecksums(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeArchive(t, filepath.Join(src, "chat.xo"), map[string]string{
		"Chat.activity/activity/activity.info": "name = Chat\n",
	})

	g, err := New(WithChecksums(true))
	require.NoError(t, err)
	_, err = g.Build(t.Context(), src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(checksum.FilePath(dst))
	require.NoError(t, err)
	assert.Contains(t, string(data), site.InfoFileName)
}

func TestBuild_WithoutHTMLPages(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeArchive(t, filepath.Join(src, "chat.xo"), map[string]string{
		"Chat.activity/activity/activity.info": "name = Chat\n",
	})

	g, err := New(WithHTMLPages(false))
	require.NoError(t, err)
	_, err = g.Build(t.Context(), src, dst)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dst, site.AppDir, "Chat.html"))
}

func TestNew_InvalidMapping(t *testing.T) {
	_, err := New(WithMapping(index.FieldMapping{
		"name": {Field: "name", Kind: index.Kind("tuple")},
	}))
	assert.Error(t, err)
}

func TestBuild_CancelledContext(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeArchive(t, filepath.Join(src, "chat.xo"), map[string]string{
		"Chat.activity/activity/activity.info": "name = Chat\n",
	})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	g, err := New()
	require.NoError(t, err)
	_, err = g.Build(ctx, src, dst)
	assert.ErrorIs(t, err, context.Canceled)
}
