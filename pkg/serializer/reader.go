/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Reader handles deserialization of structured data from JSON or YAML
// sources.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader
// source. If input implements io.Closer it will be closed by Reader.Close.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// Close releases resources held by the Reader. Safe to call multiple times.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// Deserialize decodes the input into target, which must be a pointer.
func (r *Reader) Deserialize(target any) error {
	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(target); err != nil {
			return fmt.Errorf("failed to deserialize JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(target); err != nil {
			return fmt.Errorf("failed to deserialize YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
	return nil
}

// FromFile reads and deserializes a file into a value of type T, detecting
// the format from the file extension.
func FromFile[T any](path string) (*T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	reader, err := NewReader(FormatFromPath(path), file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	var target T
	if err := reader.Deserialize(&target); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &target, nil
}
