// package repositories provides the persistence layer for the song library.
package repositories

import (
	"database/sql"
	"fmt"
)

// TableExists reports whether a table with the given name exists in the database.
func TableExists(db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for table %s: %w", name, err)
	}
	return exists, nil
}
