/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := New(ErrCodeNotFound, "icon not found")
		assert.Equal(t, "[NOT_FOUND] icon not found", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("read failed")
		err := Wrap(ErrCodeInternal, "descriptor unreadable", cause)
		assert.Equal(t, "[INTERNAL] descriptor unreadable: read failed", err.Error())
	})
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	assert.True(t, errors.Is(err, cause))

	var se *StructuredError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodeInternal, se.Code)
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeInvalidConfig, "unknown kind", map[string]any{
		"kind": "tuple",
	})
	assert.Equal(t, ErrCodeInvalidConfig, err.Code)
	assert.Equal(t, "tuple", err.Context["kind"])
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidConfig, CodeOf(New(ErrCodeInvalidConfig, "bad")))
	assert.Equal(t, ErrCodeInternal, CodeOf(fmt.Errorf("plain")))
}
