/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"
)

// ArtifactType is the media type for catalog site artifacts. It marks the
// artifact as a static site tree rather than a runnable container image.
const ArtifactType = "application/vnd.sugarlabs.aslo.catalog"

// PushOptions configures the registry push of a generated site directory.
type PushOptions struct {
	// SiteDir is the generated site directory to push.
	SiteDir string
	// Reference is the parsed registry target. Tag must be set.
	Reference *Reference
	// Version is recorded in the manifest version annotation.
	Version string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PushResult contains the result of a successful push.
type PushResult struct {
	// Digest is the SHA256 digest of the pushed manifest.
	Digest string
	// Reference is the full image reference (registry/repository:tag).
	Reference string
}

// Push packages the site directory as a single-layer OCI artifact and pushes
// it to the target registry using ORAS.
func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	if opts.Reference == nil || opts.Reference.Tag == "" {
		return nil, fmt.Errorf("tagged OCI reference is required to push")
	}

	// absolute path avoids ORAS working directory issues
	absSiteDir, err := filepath.Abs(opts.SiteDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve site directory: %w", err)
	}

	fs, err := file.New(absSiteDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}
	defer func() { _ = fs.Close() }()
	fs.TarReproducible = true

	layerDesc, err := fs.Add(ctx, ".", ociv1.MediaTypeImageLayerGzip, absSiteDir)
	if err != nil {
		return nil, fmt.Errorf("failed to add site directory to store: %w", err)
	}

	packOpts := oras.PackManifestOptions{
		Layers: []ociv1.Descriptor{layerDesc},
		ManifestAnnotations: map[string]string{
			"org.opencontainers.image.title":   "ASLO Catalog",
			"org.opencontainers.image.version": opts.Version,
			"org.opencontainers.image.vendor":  "Sugar Labs",
		},
	}
	manifestDesc, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType, packOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to pack manifest: %w", err)
	}

	if err := fs.Tag(ctx, manifestDesc, opts.Reference.Tag); err != nil {
		return nil, fmt.Errorf("failed to tag manifest in local store: %w", err)
	}

	repo, err := remote.NewRepository(fmt.Sprintf("%s/%s", opts.Reference.Registry, opts.Reference.Repository))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize remote repository: %w", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	slog.Info("pushing catalog site to registry",
		"registry", opts.Reference.Registry,
		"repository", opts.Reference.Repository,
		"tag", opts.Reference.Tag,
	)

	desc, err := oras.Copy(ctx, fs, opts.Reference.Tag, repo, opts.Reference.Tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to push artifact to registry: %w", err)
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: opts.Reference.ImageReference(),
	}, nil
}

// createAuthClient creates an HTTP client with optional TLS configuration
// and Docker credential support.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, _ := credentials.NewStoreFromDocker(credentials.StoreOptions{})

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	return &auth.Client{
		Client:     &http.Client{Transport: transport},
		Cache:      auth.NewCache(),
		Credential: credentials.Credential(credStore),
	}
}
