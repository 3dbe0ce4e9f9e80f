package postgres

import (
	"strings"

	"gatekeeper/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
	pgCheckViolation   = "23514"
	pgStringTooLong    = "22001"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// GORM translates the driver error only when TranslateError is enabled
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == pgUniqueViolation
}

// isValueTooLong reports a string longer than its VARCHAR column.
func isValueTooLong(err error) bool {
	return pgErrorCode(err) == pgStringTooLong
}

func isNotNullConstraintViolation(err error) bool {
	if pgErrorCode(err) == pgNotNullViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") && strings.Contains(errMsg, "not-null")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return pgErrorCode(err) == pgCheckViolation
}

// violatedConstraint returns the constraint name reported by PostgreSQL, if any.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}
