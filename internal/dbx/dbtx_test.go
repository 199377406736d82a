package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/useraccounts/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY, v TEXT);`)
	require.NoError(t, err)
	return db
}

func TestExpectOneRow_SingleRow(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO t(id, v) VALUES (1, 'a')`)
	require.NoError(t, err)

	var q DBTX = db
	res, err := q.ExecContext(ctx, `UPDATE t SET v = 'b' WHERE id = 1`)
	require.NoError(t, err)
	require.NoError(t, ExpectOneRow(res))
}

func TestExpectOneRow_NoRowsIsNotFound(t *testing.T) {
	db := setupDB(t)

	res, err := db.Exec(`DELETE FROM t WHERE id = 42`)
	require.NoError(t, err)
	require.ErrorIs(t, ExpectOneRow(res), common.ErrorNotFound)
}

func TestExpectOneRow_ManyRows(t *testing.T) {
	db := setupDB(t)

	_, err := db.Exec(`INSERT INTO t(v) VALUES ('x'), ('x')`)
	require.NoError(t, err)

	res, err := db.Exec(`UPDATE t SET v = 'y' WHERE v = 'x'`)
	require.NoError(t, err)

	err = ExpectOneRow(res)
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestExpectOneRow_RowsAffectedError(t *testing.T) {
	err := ExpectOneRow(sqlmock.NewErrorResult(errors.New("unsupported")))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read affected rows")
}
