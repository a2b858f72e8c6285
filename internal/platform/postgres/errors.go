package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskr-api/internal/store"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for logging.
//
//   - sql.ErrNoRows becomes store.ErrNotFound.
//   - SQLSTATE class 23 becomes store.ErrDuplicate for unique violations and
//     store.ErrConstraintViolation otherwise.
//   - SQLSTATE class 22 becomes store.ErrInvalidEntity.
//
// Any other error is returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case IsUniqueViolation(pgErr):
			return fmt.Errorf("%w: %s: %v", store.ErrDuplicate, pgErr.ConstraintName, err)
		case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
			return fmt.Errorf(
				"%w: %s (%s): %v",
				store.ErrConstraintViolation,
				constraintTarget(pgErr),
				pgErr.Code,
				err,
			)
		case pgerrcode.IsDataException(pgErr.Code):
			return fmt.Errorf("%w: %s: %v", store.ErrInvalidEntity, pgErr.Code, err)
		}
	}

	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected, it returns notFound (store.ErrNotFound when nil).
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}

	return nil
}

func constraintTarget(pgErr *pgconn.PgError) string {
	switch {
	case pgErr.ConstraintName != "":
		return pgErr.ConstraintName
	case pgErr.ColumnName != "":
		return pgErr.ColumnName
	default:
		return "unknown constraint"
	}
}
