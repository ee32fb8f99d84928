// Package serializer provides utilities for serializing data to various
// formats.
//
// The package supports two output formats:
//   - JSON: machine-readable structured data with proper indentation
//   - YAML: human-readable configuration format
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, data); err != nil {
//		log.Fatal(err)
//	}
//
// Reading a typed value from a file, format detected by extension:
//
//	mapping, err := serializer.FromFile[index.FieldMapping]("mapping.yaml")
package serializer
