package repository

import (
	"strings"

	"github.com/lib/pq"
)

// Queries are written with ? placeholders and passed through
// sqlx.DB.Rebind so the same SQL runs against postgres and the sqlite
// database used in tests.

// isUniqueViolation reports whether err is a unique-constraint error
// from either driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
