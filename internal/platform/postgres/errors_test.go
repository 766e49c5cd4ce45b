package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/slotocki/flashcards/internal/store"
	"github.com/stretchr/testify/assert"
)

func newPgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "progress",
		ColumnName:     "status",
		ConstraintName: constraint,
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()
	plain := errors.New("boom")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"unique", newPgError(uniqueViolationCode, "progress_user_card_key"), store.ErrDuplicate},
		{"foreign key", newPgError(foreignKeyViolationCode, progressCardFKey), store.ErrInvalidEntity},
		{"check", newPgError(checkViolationCode, "progress_status_check"), store.ErrInvalidEntity},
		{"not null", newPgError(notNullViolationCode, ""), store.ErrInvalidEntity},
		{"wrapped pg error", fmt.Errorf("exec: %w", newPgError(uniqueViolationCode, "")), store.ErrDuplicate},
		{"unmapped", plain, plain},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, MapError(tt.err), tt.target)
		})
	}

	assert.NoError(t, MapError(nil))
}

func TestForeignKeyHelpers(t *testing.T) {
	t.Parallel()
	fk := fmt.Errorf("insert: %w", newPgError(foreignKeyViolationCode, progressUserFKey))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.Equal(t, progressUserFKey, ViolatedConstraint(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("x")))
	assert.Empty(t, ViolatedConstraint(errors.New("x")))
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()
	assert.True(t, IsNotFoundError(sql.ErrNoRows))
	assert.True(t, IsNotFoundError(store.ErrDeckNotFound))
	assert.False(t, IsNotFoundError(store.ErrDuplicate))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()
	assert.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1), store.ErrProgressNotFound))
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), store.ErrProgressNotFound), store.ErrProgressNotFound)
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), nil), store.ErrNotFound)
	assert.Error(t, CheckRowsAffected(sqlmock.NewErrorResult(errors.New("no count")), nil))
	assert.Error(t, CheckRowsAffected(nil, nil))
}
