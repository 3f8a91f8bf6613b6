package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE class 23 (integrity constraint violation) codes.
const (
	pgCodeNotNullViolation    = "23502"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
)

// Helper functions mapping PostgreSQL/GORM failures onto the constraint
// classes the repositories care about. The connection is opened without GORM's
// error translation, so the raw *pgconn.PgError is what actually reaches the
// repositories; the GORM sentinels are still matched for sessions that do
// translate.

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgCodeUniqueViolation || errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgCodeForeignKeyViolation || errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgCodeCheckViolation || errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func isNotNullConstraintViolation(err error) bool {
	if pgErrorCode(err) == pgCodeNotNullViolation {
		return true
	}

	// GORM has no sentinel for not-null violations; fall back to the
	// PostgreSQL error text.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgCodeNotNullViolation)
}
