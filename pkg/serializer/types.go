/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import "context"

// Serializer is an interface for serializing run data.
// Implementations can serialize data to various formats such as JSON or
// YAML.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement if they
// need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
