/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Bucket names a category of problem bundles collected across a run.
type Bucket string

const (
	// BucketNotArchive collects paths that could not be opened as
	// zip-format archives.
	BucketNotArchive Bucket = "not-a-valid-archive"

	// BucketDescriptorCount collects bundles whose archive did not contain
	// exactly one descriptor entry.
	BucketDescriptorCount Bucket = "not-exactly-one-descriptor"

	// BucketIconMissing collects named bundles whose icon asset could not
	// be resolved. Non-fatal.
	BucketIconMissing Bucket = "icon-missing"

	// BucketMisc collects bundles abandoned for per-bundle faults outside
	// the other categories (e.g. unreadable descriptor payload).
	BucketMisc Bucket = "miscellaneous"

	// BucketMissingName collects bundles whose metadata lacks a usable
	// name: they produce a record and an index entry but no icon, copy, or
	// catalog page. Non-fatal.
	BucketMissingName Bucket = "missing-name"
)

// Buckets returns all buckets in their fixed report order.
func Buckets() []Bucket {
	return []Bucket{
		BucketNotArchive,
		BucketDescriptorCount,
		BucketIconMissing,
		BucketMisc,
		BucketMissingName,
	}
}

// FileName returns the plain-text report file written for the bucket.
func (b Bucket) FileName() string {
	switch b {
	case BucketNotArchive:
		return "bundlesNotZipFiles.txt"
	case BucketDescriptorCount:
		return "bundlesNotExactlyOneInfoFile.txt"
	case BucketIconMissing:
		return "iconErrorBundles.txt"
	case BucketMisc:
		return "miscErrorBundles.txt"
	case BucketMissingName:
		return "missingNameBundles.txt"
	default:
		return string(b) + ".txt"
	}
}

// Report accumulates the categorized problem bundles and run statistics for
// one catalog generation pass. It is owned by a single run and never
// accessed concurrently.
type Report struct {
	// RunID uniquely identifies the generation run.
	RunID string `json:"run_id" yaml:"run_id"`

	// Timestamp is the run start time in RFC3339 UTC.
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	// Version is the tool version that produced the report.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// BundlesDir is the scanned source directory.
	BundlesDir string `json:"bundles_dir" yaml:"bundles_dir"`

	// SiteDir is the destination site root.
	SiteDir string `json:"site_dir" yaml:"site_dir"`

	// Discovered is the count of candidate bundle paths found.
	Discovered int `json:"discovered" yaml:"discovered"`

	// Records is the count of raw metadata records (and index entries)
	// produced.
	Records int `json:"records" yaml:"records"`

	// TotalFiles is the count of site files written.
	TotalFiles int `json:"total_files" yaml:"total_files"`

	// TotalSize is the total size in bytes of all written site files.
	TotalSize int64 `json:"total_size_bytes" yaml:"total_size_bytes"`

	// TotalDuration is the wall time of the run.
	TotalDuration time.Duration `json:"total_duration" yaml:"total_duration"`

	// Errors holds the per-bucket path lists, in discovery order, never
	// deduplicated.
	Errors map[Bucket][]string `json:"errors" yaml:"errors"`
}

// New creates an empty Report for a run over the given directories.
// All buckets are initialized so empty report files are still written.
func New(version, bundlesDir, siteDir string) *Report {
	errs := make(map[Bucket][]string, len(Buckets()))
	for _, b := range Buckets() {
		errs[b] = []string{}
	}

	return &Report{
		RunID:      uuid.NewString(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Version:    version,
		BundlesDir: bundlesDir,
		SiteDir:    siteDir,
		Errors:     errs,
	}
}

// Record appends a path to the given bucket, preserving discovery order.
func (r *Report) Record(bucket Bucket, path string) {
	r.Errors[bucket] = append(r.Errors[bucket], path)
}

// Paths returns the bucket's path list, in append order.
func (r *Report) Paths(bucket Bucket) []string {
	return r.Errors[bucket]
}

// AddFile accounts for one written site file of the given size.
func (r *Report) AddFile(size int64) {
	r.TotalFiles++
	r.TotalSize += size
}

// ErrorCount returns the total number of bucketed paths across all buckets.
func (r *Report) ErrorCount() int {
	count := 0
	for _, paths := range r.Errors {
		count += len(paths)
	}
	return count
}

// HasErrors returns true if any bucket is non-empty.
func (r *Report) HasErrors() bool {
	return r.ErrorCount() > 0
}

// Summary returns a human-readable summary of the run.
func (r *Report) Summary() string {
	return fmt.Sprintf(
		"Processed %d/%d bundles, wrote %d files (%s) in %v. Problem bundles: %d.",
		r.Records,
		r.Discovered,
		r.TotalFiles,
		formatBytes(r.TotalSize),
		r.TotalDuration.Round(time.Millisecond),
		r.ErrorCount(),
	)
}

// formatBytes formats bytes into human-readable format.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
