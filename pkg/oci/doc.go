// Package oci pushes a generated catalog site to OCI-compliant registries.
//
// The site directory is packaged as a single-layer OCI artifact with the
// media type "application/vnd.sugarlabs.aslo.catalog" and pushed with ORAS.
// The custom media type distinguishes catalog sites from runnable container
// images; consumers that do not understand it should treat the artifact as
// a non-executable blob.
//
// Authentication uses the standard Docker credential store
// (~/.docker/config.json) via the ORAS credentials package.
//
// Usage:
//
//	ref, err := oci.ParseReference("oci://ghcr.io/sugarlabs/aslo-catalog:v1")
//	if err != nil {
//	    return err
//	}
//	result, err := oci.Push(ctx, oci.PushOptions{
//	    SiteDir:   siteDir,
//	    Reference: ref,
//	    Version:   version,
//	})
package oci
