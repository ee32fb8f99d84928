// Package index folds raw bundle metadata records into the catalog's
// client-side search index.
//
// A configurable field-mapping table routes descriptor source keys into the
// fixed entry schema (name, summary, description, tags). Multiple source
// keys may merge into one target field: string targets concatenate with a
// separating space, array targets split on semicolons (or whitespace when
// no semicolon is present) and append. The table is validated once, before
// any record is processed; an unknown kind or target field is a
// configuration defect, never a per-bundle failure.
package index
