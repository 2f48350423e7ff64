package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrTaskNotFound)))

	assert.False(t, IsNotFoundError(ErrInvalidEntity))
	assert.False(t, IsNotFoundError(errors.New("something else")))
	assert.False(t, IsNotFoundError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	base := errors.New("connection reset")
	err := NewStoreError("task", "create", "insert failed", base)

	assert.Contains(t, err.Error(), "create operation on task failed")
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, base), "StoreError should unwrap to the original error")

	bare := NewStoreError("task", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on task failed: no rows", bare.Error())
}
