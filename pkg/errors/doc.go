// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInternal,
//	    "failed to extract bundle metadata",
//	    readErr,
//	    map[string]interface{}{
//	        "bundle": path,
//	        "entry":  entryName,
//	    },
//	)
package errors
