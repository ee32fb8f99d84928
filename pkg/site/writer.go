/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package site

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sugarlabs/aslo-catalog/pkg/bundle"
	apperrors "github.com/sugarlabs/aslo-catalog/pkg/errors"
	"github.com/sugarlabs/aslo-catalog/pkg/index"
	"github.com/sugarlabs/aslo-catalog/pkg/report"
)

// Site layout directories and file names under the destination root.
const (
	AppDir     = "app"
	IconsDir   = "icons"
	BundlesDir = "bundles"
	ScriptsDir = "js"

	InfoFileName  = "info.json"
	IndexFileName = "index.js"
)

// Writer persists the run's outputs under the destination site root.
// It tracks every file it writes for accounting and checksum generation.
type Writer struct {
	root  string
	files []string
	size  int64
}

// NewWriter creates a Writer rooted at the destination site directory.
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Root returns the destination site root directory.
func (w *Writer) Root() string {
	return w.root
}

// Files returns the paths of all files written so far, in write order.
func (w *Writer) Files() []string {
	return w.files
}

// TotalSize returns the total size in bytes of all files written so far.
func (w *Writer) TotalSize() int64 {
	return w.size
}

// Bootstrap creates the site layout directories (app, icons, bundles, js).
func (w *Writer) Bootstrap() error {
	for _, dir := range []string{AppDir, IconsDir, BundlesDir, ScriptsDir} {
		if err := os.MkdirAll(filepath.Join(w.root, dir), 0755); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal,
				"failed to create site directory", err)
		}
	}
	slog.Debug("site layout created", "root", w.root)
	return nil
}

// WriteInfoJSON writes the raw metadata records as a pretty-printed JSON
// array at info.json.
func (w *Writer) WriteInfoJSON(records []bundle.Info) error {
	if records == nil {
		records = []bundle.Info{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to serialize info records", err)
	}
	return w.writeFile(InfoFileName, data)
}

// WriteIndexScript writes the script-embeddable index document at
// js/index.js.
func (w *Writer) WriteIndexScript(entries []index.Entry) error {
	doc, err := index.Document(entries)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to build index document", err)
	}
	return w.writeFile(filepath.Join(ScriptsDir, IndexFileName), doc)
}

// WriteReports writes one plain-text file per error bucket, one path per
// line, in append order. Empty buckets still produce an (empty) file.
func (w *Writer) WriteReports(r *report.Report) error {
	for _, bucket := range report.Buckets() {
		paths := r.Paths(bucket)
		var content string
		if len(paths) > 0 {
			content = strings.Join(paths, "\n") + "\n"
		}
		if err := w.writeFile(bucket.FileName(), []byte(content)); err != nil {
			return err
		}
	}
	return nil
}

// WriteIcon persists an extracted icon as icons/<name>.svg.
func (w *Writer) WriteIcon(name string, data []byte) error {
	return w.writeFile(filepath.Join(IconsDir, name+bundle.IconExtension), data)
}

// CopyBundle copies the original archive to bundles/<name>.xo.
func (w *Writer) CopyBundle(src, name string) error {
	dst := filepath.Join(w.root, BundlesDir, name+bundle.Extension)

	in, err := os.Open(src)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to open bundle for copy", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to create bundle copy", err)
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to copy bundle", err)
	}

	w.track(dst, n)
	return nil
}

// writeFile writes data under the site root and tracks it.
func (w *Writer) writeFile(relPath string, data []byte) error {
	path := filepath.Join(w.root, relPath)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to write site file", err, map[string]any{"path": path})
	}
	w.track(path, int64(len(data)))
	return nil
}

func (w *Writer) track(path string, size int64) {
	w.files = append(w.files, path)
	w.size += size
	slog.Debug("wrote site file", "path", path, "size_bytes", size)
}
