// Package bundle discovers, validates, and extracts activity bundles.
//
// An activity bundle is a zip-format archive with the .xo extension
// containing a single activity/activity.info descriptor and, usually, an
// SVG icon next to it. The package partitions discovered paths into valid
// and invalid archives, and extracts from each valid archive its raw
// metadata record plus icon bytes.
//
// Extraction never aborts a batch: structural problems surface as typed
// errors (DescriptorCountError) or wrapped per-bundle faults that callers
// record in the run report, and the archive handle is released on every
// exit path.
package bundle
