package repository

import (
	"database/sql"

	"github.com/google/uuid"
)

// checkID rejects ids the UUID primary keys can never hold, so a malformed
// path id reads as a missing row instead of a driver error.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return sql.ErrNoRows
	}
	return nil
}
