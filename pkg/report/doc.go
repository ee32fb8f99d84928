// Package report accumulates the categorized problem-bundle lists and run
// statistics for one catalog generation pass.
//
// Each bucket is a simple ordered sequence of path strings, appended to in
// discovery order, never reordered or deduplicated. A bundle appears in at
// most one of the two gating buckets (not-a-valid-archive,
// not-exactly-one-descriptor); icon-missing and missing-name are
// independent non-fatal annotations.
package report
