package users

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/dmitrijs2005/useraccounts/internal/dbx"
)

var sqliteDialect = dialect{
	bind:            func(q string) string { return q },
	isUserNameTaken: isSQLiteUniqueViolation,
}

// NewSQLiteRepository returns a Repository over a modernc.org/sqlite handle.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return newSQLRepository(db, sqliteDialect)
}

// isSQLiteUniqueViolation matches unique index violations. Primary key
// collisions report SQLITE_CONSTRAINT_PRIMARYKEY and are not matched.
func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
