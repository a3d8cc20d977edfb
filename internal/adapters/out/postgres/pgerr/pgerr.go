// Package pgerr translates postgres driver errors into errs types.
package pgerr

import (
	"errors"

	"catalog/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UniqueViolation is the SQLSTATE of a unique constraint failure.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err came from a unique index, either as
// translated by gorm or as the raw pgx error.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// Translate maps a unique violation to a ConflictError on paramName and
// returns every other error unchanged.
func Translate(err error, paramName string) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return errs.NewConflictErrorWithCause(paramName, err)
	}
	return err
}
