/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/sugarlabs/aslo-catalog/pkg/errors"
)

// URIScheme is the URI scheme for OCI registry targets
// (e.g., "oci://ghcr.io/org/repo:tag").
const URIScheme = "oci://"

// Reference is a parsed OCI registry target.
type Reference struct {
	// Registry is the registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the image repository path (e.g., "sugarlabs/aslo-catalog").
	Repository string
	// Tag is the image tag. Empty means no tag was specified; the caller
	// should apply a default (e.g., the tool version).
	Tag string
}

// ParseReference parses an oci:// target string into its components.
//
// If no tag is specified, Tag is empty; the caller is responsible for
// applying a default.
func ParseReference(target string) (*Reference, error) {
	if !strings.HasPrefix(target, URIScheme) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("publish target must start with %s", URIScheme))
	}

	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid OCI reference", err)
	}

	r := &Reference{
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
	}
	if tagged, ok := ref.(reference.Tagged); ok {
		r.Tag = tagged.Tag()
	}
	return r, nil
}

// String returns the full target string, including the oci:// scheme.
func (r *Reference) String() string {
	return URIScheme + r.ImageReference()
}

// ImageReference returns the Docker-style image reference without the
// oci:// scheme.
func (r *Reference) ImageReference() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference with the specified tag.
func (r *Reference) WithTag(tag string) *Reference {
	return &Reference{
		Registry:   r.Registry,
		Repository: r.Repository,
		Tag:        tag,
	}
}
