/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package checksum

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the standard name for checksum files.
const FileName = "checksums.txt"

// Generate creates a checksums.txt file in siteDir containing SHA256
// checksums for all provided files, with paths written relative to siteDir.
//
// Returns an error if the context is canceled, any file cannot be read, or
// the checksums file cannot be written.
func Generate(ctx context.Context, siteDir string, files []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled: %w", err)
	}

	checksums := make([]string, 0, len(files))

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s for checksum: %w", file, err)
		}

		hash := sha256.Sum256(data)
		relPath, err := filepath.Rel(siteDir, file)
		if err != nil {
			relPath = file
		}

		checksums = append(checksums, fmt.Sprintf("%s  %s", hex.EncodeToString(hash[:]), relPath))
	}

	checksumPath := filepath.Join(siteDir, FileName)
	content := strings.Join(checksums, "\n") + "\n"

	if err := os.WriteFile(checksumPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write checksums: %w", err)
	}

	slog.Debug("checksums generated",
		"file_count", len(checksums),
		"path", checksumPath,
	)

	return nil
}

// FilePath returns the full path to the checksums.txt file in the given
// site directory.
func FilePath(siteDir string) string {
	return filepath.Join(siteDir, FileName)
}
