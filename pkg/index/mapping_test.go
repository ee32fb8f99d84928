/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package index

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sugarlabs/aslo-catalog/pkg/errors"
)

func TestFieldMapping_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mapping FieldMapping
		wantErr bool
	}{
		{
			name:    "default mapping is valid",
			mapping: DefaultMapping(),
		},
		{
			name: "custom aliases are valid",
			mapping: FieldMapping{
				"title":    {Field: FieldName, Kind: KindString},
				"keywords": {Field: FieldTags, Kind: KindArray},
			},
		},
		{
			name:    "empty mapping rejected",
			mapping: FieldMapping{},
			wantErr: true,
		},
		{
			name: "unknown kind rejected",
			mapping: FieldMapping{
				"name": {Field: FieldName, Kind: Kind("tuple")},
			},
			wantErr: true,
		},
		{
			name: "unknown target field rejected",
			mapping: FieldMapping{
				"license": {Field: "license", Kind: KindString},
			},
			wantErr: true,
		},
		{
			name: "kind mismatch rejected",
			mapping: FieldMapping{
				"name": {Field: FieldName, Kind: KindArray},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mapping.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var se *apperrors.StructuredError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, apperrors.ErrCodeInvalidConfig, se.Code)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewAggregator_RejectsInvalidMappingBeforeProcessing(t *testing.T) {
	_, err := NewAggregator(WithMapping(FieldMapping{
		"name": {Field: FieldName, Kind: Kind("scalar")},
	}))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidConfig, apperrors.CodeOf(err))
}

func TestKind_IsValid(t *testing.T) {
	assert.True(t, KindString.IsValid())
	assert.True(t, KindArray.IsValid())
	assert.False(t, Kind("tuple").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestLoadMapping(t *testing.T) {
	t.Run("valid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mapping.yaml")
		content := `
name: {field: name, kind: string}
keywords: {field: tags, kind: array}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		mapping, err := LoadMapping(path)
		require.NoError(t, err)
		assert.Equal(t, Target{Field: FieldTags, Kind: KindArray}, mapping["keywords"])
	})

	t.Run("invalid kind fails fast", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mapping.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: {field: name, kind: list}\n"), 0644))

		_, err := LoadMapping(path)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidConfig, apperrors.CodeOf(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadMapping(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
