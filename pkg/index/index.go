/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sugarlabs/aslo-catalog/pkg/bundle"
)

// Entry is the fixed-schema record used to populate the catalog's
// client-side search index.
type Entry struct {
	Name        string   `json:"name"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

const (
	// DocumentPrefix and DocumentSuffix wrap the serialized entry list into
	// the call expression the site's search script evaluates.
	DocumentPrefix = "search.assignIndex("
	DocumentSuffix = ")"
)

// Aggregator folds raw metadata records into index entries using a
// validated field-mapping table.
type Aggregator struct {
	mapping FieldMapping
	sources []string
}

// Option defines a functional option for configuring the Aggregator.
type Option func(*Aggregator)

// WithMapping sets the field-mapping table. If nil, the default mapping
// is used.
func WithMapping(m FieldMapping) Option {
	return func(a *Aggregator) {
		if m != nil {
			a.mapping = m
		}
	}
}

// NewAggregator creates an Aggregator, validating the mapping table before
// any record is processed. An invalid table is a configuration defect and
// fails fast.
func NewAggregator(opts ...Option) (*Aggregator, error) {
	a := &Aggregator{
		mapping: DefaultMapping(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.mapping.Validate(); err != nil {
		return nil, err
	}

	a.sources = a.mapping.sortedSources()
	return a, nil
}

// Aggregate produces one Entry per raw record, in the same order. Every
// mapped target starts at its kind's zero value; record keys present in the
// mapping contribute via the kind's combination rule, source keys in sorted
// order.
func (a *Aggregator) Aggregate(records []bundle.Info) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, a.aggregateOne(record))
	}
	return entries
}

func (a *Aggregator) aggregateOne(record bundle.Info) Entry {
	entry := Entry{
		Tags: []string{},
	}

	for _, source := range a.sources {
		value, ok := record[source]
		if !ok {
			continue
		}

		target := a.mapping[source]
		switch target.Kind {
		case KindString:
			field := entry.stringField(target.Field)
			*field = combineString(*field, value)
		case KindArray:
			entry.Tags = append(entry.Tags, splitArrayValue(value)...)
		}
	}

	return entry
}

// stringField returns a pointer to the entry's string field with the given
// name. The mapping table is validated up front, so the name is always one
// of the known string fields.
func (e *Entry) stringField(name string) *string {
	switch name {
	case FieldName:
		return &e.Name
	case FieldSummary:
		return &e.Summary
	case FieldDescription:
		return &e.Description
	}
	panic(fmt.Sprintf("index: unmapped string field %q", name))
}

// combineString concatenates a contribution onto an existing string value
// with a single separating space, trimmed.
func combineString(existing, value string) string {
	if existing == "" {
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(existing + " " + value)
}

// splitArrayValue splits a raw value into array elements: on semicolons when
// the value contains any, otherwise on whitespace.
func splitArrayValue(value string) []string {
	if strings.Contains(value, ";") {
		return strings.Split(value, ";")
	}
	return strings.Fields(value)
}

// Document serializes the entry list into the script-embeddable index
// document: a pretty-printed JSON array wrapped in the assignIndex call.
func Document(entries []Entry) ([]byte, error) {
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize index entries: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(DocumentPrefix)
	buf.Write(data)
	buf.WriteString(DocumentSuffix)
	return buf.Bytes(), nil
}

// ParseDocument parses an index document back into its entry list. Inverse
// of Document.
func ParseDocument(data []byte) ([]Entry, error) {
	s := strings.TrimSpace(string(data))
	if !strings.HasPrefix(s, DocumentPrefix) || !strings.HasSuffix(s, DocumentSuffix) {
		return nil, fmt.Errorf("index document missing %s wrapper", DocumentPrefix+DocumentSuffix)
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, DocumentPrefix), DocumentSuffix)

	var entries []Entry
	if err := json.Unmarshal([]byte(s), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse index document: %w", err)
	}
	return entries, nil
}
