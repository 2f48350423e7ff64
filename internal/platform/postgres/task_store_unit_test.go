package postgres

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/taskhive/task-api/internal/store"
)

func TestMapConstraintError(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("unique violation maps to invalid entity", func(t *testing.T) {
		err := mapConstraintError(&pgconn.PgError{Code: pgUniqueViolationCode}, id)
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
		assert.Contains(t, err.Error(), id.String())
	})

	t.Run("check violation maps to invalid entity", func(t *testing.T) {
		err := mapConstraintError(&pgconn.PgError{
			Code:           pgCheckViolationCode,
			ConstraintName: "tasks_status_check",
		}, id)
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
		assert.Contains(t, err.Error(), "tasks_status_check")
	})

	t.Run("other pg errors pass through", func(t *testing.T) {
		err := mapConstraintError(&pgconn.PgError{Code: "57P01"}, id)
		assert.Nil(t, err)
	})

	t.Run("non-pg errors pass through", func(t *testing.T) {
		err := mapConstraintError(errors.New("connection refused"), id)
		assert.Nil(t, err)
	})
}

func TestNewPostgresTaskStorePanicsOnNilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewPostgresTaskStore(nil, nil)
	})
}
