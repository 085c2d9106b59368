// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// pqUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pqUniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique constraint violation.
// Checks both the driver-level pq error and GORM's translated error, so the
// same repositories work against postgres and the sqlite test harness.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	return false
}
