// Package cli implements the aslo command line interface.
//
// The CLI exposes two commands:
//
//	aslo build BUNDLES_DIR SITE_DIR   generate the catalog site
//	aslo version                      print version information
//
// The build command takes exactly two positional arguments, the directory
// of .xo activity bundles and the site output directory, plus flags for
// the field mapping, run summary output, checksums, HTML page generation,
// and optional OCI publishing.
package cli
