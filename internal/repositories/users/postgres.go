package users

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/useraccounts/internal/dbx"
)

const (
	pgUniqueViolation = "23505"

	userNameIndex = "idx_users_username"
)

var postgresDialect = dialect{
	bind:            rebindDollar,
	isUserNameTaken: isPostgresUserNameViolation,
}

// NewPostgresRepository returns a Repository over a pgx stdlib handle.
func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return newSQLRepository(db, postgresDialect)
}

// rebindDollar rewrites "?" placeholders into $1, $2, ...
func rebindDollar(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func isPostgresUserNameViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == userNameIndex
	}
	return false
}
