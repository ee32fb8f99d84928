/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New("v1.0.0", "/bundles", "/site")

	assert.NotEmpty(t, r.RunID)
	assert.NotEmpty(t, r.Timestamp)
	assert.Equal(t, "v1.0.0", r.Version)
	assert.Equal(t, "/bundles", r.BundlesDir)
	assert.Equal(t, "/site", r.SiteDir)

	// all buckets present and empty
	require.Len(t, r.Errors, len(Buckets()))
	for _, b := range Buckets() {
		assert.NotNil(t, r.Errors[b])
		assert.Empty(t, r.Errors[b])
	}
	assert.False(t, r.HasErrors())
}

func TestRecord_PreservesOrderAndDuplicates(t *testing.T) {
	r := New("dev", "src", "dst")

	r.Record(BucketIconMissing, "b.xo")
	r.Record(BucketIconMissing, "a.xo")
	r.Record(BucketIconMissing, "b.xo")

	assert.Equal(t, []string{"b.xo", "a.xo", "b.xo"}, r.Paths(BucketIconMissing))
	assert.Equal(t, 3, r.ErrorCount())
	assert.True(t, r.HasErrors())
}

func TestBucketFileNames(t *testing.T) {
	want := map[Bucket]string{
		BucketNotArchive:      "bundlesNotZipFiles.txt",
		BucketDescriptorCount: "bundlesNotExactlyOneInfoFile.txt",
		BucketIconMissing:     "iconErrorBundles.txt",
		BucketMisc:            "miscErrorBundles.txt",
		BucketMissingName:     "missingNameBundles.txt",
	}

	for bucket, name := range want {
		assert.Equal(t, name, bucket.FileName())
	}
}

func TestAddFile(t *testing.T) {
	r := New("dev", "src", "dst")
	r.AddFile(100)
	r.AddFile(2048)

	assert.Equal(t, 2, r.TotalFiles)
	assert.Equal(t, int64(2148), r.TotalSize)
}

func TestSummary(t *testing.T) {
	r := New("dev", "src", "dst")
	r.Discovered = 3
	r.Records = 2
	r.TotalDuration = 120 * time.Millisecond
	r.AddFile(512)
	r.Record(BucketNotArchive, "broken.xo")

	s := r.Summary()
	assert.Contains(t, s, "2/3 bundles")
	assert.Contains(t, s, "1 files")
	assert.Contains(t, s, "Problem bundles: 1")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KB", formatBytes(1024))
	assert.Equal(t, "1.5 MB", formatBytes(1536*1024))
}
