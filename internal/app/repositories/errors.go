package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/karan/societyhub/internal/pkg/apperrors"
	"github.com/karan/societyhub/internal/pkg/logger"
)

// Postgres error codes that map onto the application taxonomy
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// wrapErr translates driver errors into the application error taxonomy.
// Driver detail is logged here and never crosses the repository boundary.
func wrapErr(operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrResourceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.ErrResourceAlreadyExists
		case pgForeignKeyViolation:
			return apperrors.ErrConflict
		}
	}

	logger.Error().Err(err).Str("operation", operation).Msg("Database operation failed")
	return apperrors.NewDataAccessError(operation, err)
}

// wrapErrAs translates err like wrapErr, then substitutes the entity-specific
// sentinel when the translation matches kind. Translation happens exactly once
// so storage failures are logged once.
func wrapErrAs(operation string, err error, kind, entity error) error {
	werr := wrapErr(operation, err)
	if errors.Is(werr, kind) {
		return entity
	}
	return werr
}
