// Package descriptor parses the activity.info metadata file embedded in
// activity bundles.
//
// The format is a simple line-oriented key-value text file in the INI
// family: "key = value" or "key: value" pairs, optional [Activity] section
// markers, and comment lines. The parser is deliberately permissive:
// malformed lines are skipped, duplicate keys resolve to the last
// occurrence, and no fixed schema is enforced at this layer.
package descriptor
