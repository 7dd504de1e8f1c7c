package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karan/societyhub/internal/pkg/apperrors"
	"github.com/karan/societyhub/internal/pkg/logger"
)

func TestWrapErrMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows becomes not found", pgx.ErrNoRows, apperrors.ErrResourceNotFound},
		{"unique violation becomes already exists", &pgconn.PgError{Code: pgUniqueViolation}, apperrors.ErrResourceAlreadyExists},
		{"foreign key violation becomes conflict", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrConflict},
		{"deadline exceeded becomes data access error", fmt.Errorf("acquire: %w", context.DeadlineExceeded), apperrors.ErrDataAccess},
		{"driver failure becomes data access error", errors.New("connection refused"), apperrors.ErrDataAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapErr("bills.list", tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestWrapErrAs(t *testing.T) {
	t.Run("substitutes entity sentinel on matching kind", func(t *testing.T) {
		err := wrapErrAs("bills.get", pgx.ErrNoRows, apperrors.ErrResourceNotFound, apperrors.ErrBillNotFound)
		assert.ErrorIs(t, err, apperrors.ErrBillNotFound)
	})

	t.Run("passes other translations through", func(t *testing.T) {
		err := wrapErrAs("bills.create", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrResourceNotFound, apperrors.ErrBillNotFound)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestWrapErrAsLogsStorageFailureOnce(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(logger.Config{Level: logger.ErrorLevel, Output: &buf})
	defer logger.Configure(logger.Config{Level: logger.InfoLevel, Pretty: true})

	err := wrapErrAs("residents.create", errors.New("connection refused"), apperrors.ErrResourceAlreadyExists, apperrors.ErrEmailAlreadyExists)
	require.ErrorIs(t, err, apperrors.ErrDataAccess)

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Database operation failed")))
}
