/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package index

import (
	"sort"

	apperrors "github.com/sugarlabs/aslo-catalog/pkg/errors"
	"github.com/sugarlabs/aslo-catalog/pkg/serializer"
)

// Kind is the closed set of target field kinds a mapping entry can declare.
type Kind string

const (
	// KindString targets accumulate values by space-separated concatenation.
	KindString Kind = "string"

	// KindArray targets accumulate values by splitting and appending.
	KindArray Kind = "array"
)

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindString, KindArray:
		return true
	default:
		return false
	}
}

// Index target field names. The entry schema is fixed; mapping tables may
// only route source keys into these fields.
const (
	FieldName        = "name"
	FieldSummary     = "summary"
	FieldDescription = "description"
	FieldTags        = "tags"
)

// targetKinds binds each entry field to its required kind.
var targetKinds = map[string]Kind{
	FieldName:        KindString,
	FieldSummary:     KindString,
	FieldDescription: KindString,
	FieldTags:        KindArray,
}

// Target describes where a descriptor source key lands in the index entry.
type Target struct {
	// Field is the index entry field name.
	Field string `json:"field" yaml:"field"`

	// Kind selects the combination rule for the field.
	Kind Kind `json:"kind" yaml:"kind"`
}

// FieldMapping maps descriptor source keys to index entry targets.
// Multiple source keys may map to the same target field; all contribute via
// the same combination rule.
type FieldMapping map[string]Target

// DefaultMapping returns the standard mapping table: name, summary, and
// description map to their same-named string fields; the tag/tags/category/
// categories aliases all merge into tags.
func DefaultMapping() FieldMapping {
	return FieldMapping{
		"name":        {Field: FieldName, Kind: KindString},
		"summary":     {Field: FieldSummary, Kind: KindString},
		"description": {Field: FieldDescription, Kind: KindString},
		"tag":         {Field: FieldTags, Kind: KindArray},
		"tags":        {Field: FieldTags, Kind: KindArray},
		"category":    {Field: FieldTags, Kind: KindArray},
		"categories":  {Field: FieldTags, Kind: KindArray},
	}
}

// Validate checks the mapping table once, before any record is processed.
// An unknown kind or unknown target field denotes a configuration defect
// and returns an ErrCodeInvalidConfig error.
func (m FieldMapping) Validate() error {
	if len(m) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig,
			"field mapping must not be empty")
	}

	for source, target := range m {
		if !target.Kind.IsValid() {
			return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
				"unknown field-mapping kind",
				map[string]any{"source": source, "kind": string(target.Kind)})
		}

		want, ok := targetKinds[target.Field]
		if !ok {
			return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
				"unknown field-mapping target field",
				map[string]any{"source": source, "field": target.Field})
		}
		if want != target.Kind {
			return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
				"field-mapping kind does not match target field",
				map[string]any{
					"source": source,
					"field":  target.Field,
					"kind":   string(target.Kind),
					"want":   string(want),
				})
		}
	}
	return nil
}

// sortedSources returns the mapping's source keys in sorted order, so record
// fields contribute to merged targets deterministically.
func (m FieldMapping) sortedSources() []string {
	sources := make([]string, 0, len(m))
	for source := range m {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}

// LoadMapping reads a mapping table from a YAML or JSON file. The result is
// validated before being returned.
func LoadMapping(path string) (FieldMapping, error) {
	mapping, err := serializer.FromFile[FieldMapping](path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig,
			"failed to load field mapping", err)
	}
	if err := mapping.Validate(); err != nil {
		return nil, err
	}
	return *mapping, nil
}
