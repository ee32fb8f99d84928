/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/sugarlabs/aslo-catalog/pkg/descriptor"
	apperrors "github.com/sugarlabs/aslo-catalog/pkg/errors"
)

const (
	// Extension is the activity bundle file extension.
	Extension = ".xo"

	// DescriptorSuffix is the in-archive path suffix identifying the
	// activity descriptor entry.
	DescriptorSuffix = "activity/activity.info"

	// IconExtension is the extension of the icon asset referenced by the
	// descriptor's icon field.
	IconExtension = ".svg"
)

// Info is the raw metadata record extracted from one bundle's descriptor.
// Keys are whatever the descriptor contained; no fixed schema.
type Info map[string]string

// Name returns the activity name, or "" when the descriptor had none.
func (i Info) Name() string {
	return i["name"]
}

// Icon returns the icon field value, or "" when the descriptor had none.
func (i Info) Icon() string {
	return i["icon"]
}

// Discover walks root recursively and returns the paths of all candidate
// bundle files (matching Extension), in lexical walk order.
func Discover(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), Extension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to scan bundles directory", err)
	}

	slog.Debug("discovered candidate bundles", "root", root, "count", len(paths))
	return paths, nil
}

// IsArchive reports whether the file at path can be opened as a zip-format
// archive. It never returns an error; unreadable files are simply not
// archives.
func IsArchive(path string) bool {
	r, err := zip.OpenReader(path)
	if err != nil {
		return false
	}
	_ = r.Close()
	return true
}

// Partition splits discovered paths into valid archives and non-archives.
// Every input lands in exactly one of the two outputs, in input order.
func Partition(paths []string) (valid, invalid []string) {
	for _, path := range paths {
		if IsArchive(path) {
			valid = append(valid, path)
		} else {
			invalid = append(invalid, path)
		}
	}
	return valid, invalid
}

// DescriptorCountError reports a bundle whose archive did not contain
// exactly one descriptor entry.
type DescriptorCountError struct {
	Path  string
	Count int
}

func (e *DescriptorCountError) Error() string {
	return fmt.Sprintf("bundle %s: expected exactly one %s entry, found %d",
		e.Path, DescriptorSuffix, e.Count)
}

// Extraction is the outcome of successfully extracting one bundle.
type Extraction struct {
	// Path is the bundle's filesystem location.
	Path string

	// Info is the parsed raw metadata record.
	Info Info

	// Icon holds the icon asset bytes, nil when the icon was not resolved.
	Icon []byte

	// IconMissing is set when the bundle is named but its icon asset could
	// not be resolved inside the archive. Non-fatal.
	IconMissing bool
}

// Option configures the Extractor.
type Option func(*Extractor)

// WithParser sets the descriptor parser used for activity.info content.
func WithParser(p *descriptor.Parser) Option {
	return func(e *Extractor) {
		if p != nil {
			e.parser = p
		}
	}
}

// Extractor opens valid bundle archives and extracts their metadata record
// and icon asset.
type Extractor struct {
	parser *descriptor.Parser
}

// NewExtractor creates a new Extractor with the given options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		parser: descriptor.NewParser(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes one valid archive: locates the single descriptor entry,
// parses it, and resolves the icon asset for named bundles.
//
// The archive handle is closed before Extract returns, on every path.
// A *DescriptorCountError is returned when the archive does not contain
// exactly one descriptor entry; other errors indicate per-bundle faults
// (unreadable entries) that callers classify as miscellaneous.
func (e *Extractor) Extract(path string) (*Extraction, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to reopen archive", err)
	}
	defer func() { _ = r.Close() }()

	descriptors := findDescriptors(&r.Reader)
	if len(descriptors) != 1 {
		return nil, &DescriptorCountError{Path: path, Count: len(descriptors)}
	}

	entry := descriptors[0]
	content, err := readEntry(entry)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to read descriptor entry", err,
			map[string]any{"bundle": path, "entry": entry.Name})
	}

	info, err := e.parser.Parse(content)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to parse descriptor", err,
			map[string]any{"bundle": path, "entry": entry.Name})
	}

	ex := &Extraction{
		Path: path,
		Info: info,
	}

	if ex.Info.Name() == "" {
		return ex, nil
	}

	iconPath := iconEntryPath(entry.Name, ex.Info.Icon())
	icon, ok := readIcon(&r.Reader, iconPath)
	if !ok {
		slog.Debug("icon not resolved", "bundle", path, "icon", iconPath)
		ex.IconMissing = true
		return ex, nil
	}

	ex.Icon = icon
	return ex, nil
}

// findDescriptors returns all archive entries whose path ends with the
// descriptor suffix.
func findDescriptors(r *zip.Reader) []*zip.File {
	var matches []*zip.File
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, DescriptorSuffix) {
			matches = append(matches, f)
		}
	}
	return matches
}

// iconEntryPath computes the expected in-archive icon path: the descriptor's
// directory joined with the icon field value plus the svg extension.
func iconEntryPath(descriptorPath, icon string) string {
	dir := descriptorPath[:strings.LastIndex(descriptorPath, "/")+1]
	return dir + icon + IconExtension
}

// readIcon reads the icon entry bytes if the entry exists and is readable.
func readIcon(r *zip.Reader, iconPath string) ([]byte, bool) {
	for _, f := range r.File {
		if f.Name == iconPath {
			data, err := readEntry(f)
			if err != nil {
				return nil, false
			}
			return data, true
		}
	}
	return nil, false
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
