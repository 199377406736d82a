package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/dmitrijs2005/useraccounts/internal/dbx"
	"github.com/dmitrijs2005/useraccounts/internal/models"
)

// Queries are written with "?" placeholders and rebound per dialect.
const (
	userColumns = `_id, userName, hashedPassword, firstName, lastName, address1, address2, city, state, country`

	containsQuery = `SELECT COUNT(*) FROM Users WHERE userName = ?`

	readAllQuery = `SELECT ` + userColumns + ` FROM Users ORDER BY _id`

	readQuery = `SELECT ` + userColumns + ` FROM Users WHERE _id = ?`

	insertQuery = `INSERT INTO Users (userName, hashedPassword, firstName, lastName, address1, address2, city, state, country)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING _id`

	restoreQuery = `INSERT INTO Users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateQuery = `UPDATE Users SET userName = ?, hashedPassword = ?, firstName = ?, lastName = ?,
		address1 = ?, address2 = ?, city = ?, state = ?, country = ?
		WHERE _id = ?`

	deleteQuery = `DELETE FROM Users WHERE _id = ?`
)

// dialect captures what differs between SQL engines.
type dialect struct {
	// bind rewrites "?" placeholders into the engine's syntax.
	bind func(query string) string

	// isUserNameTaken reports whether err is a violation of the username
	// unique index.
	isUserNameTaken func(err error) bool
}

// SQLRepository implements Repository over database/sql.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dialect
}

var _ Repository = (*SQLRepository)(nil)

func newSQLRepository(db dbx.DBTX, d dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

func (r *SQLRepository) q(query string) string {
	return r.dialect.bind(query)
}

// writeError wraps a failed write, tagging username collisions.
func (r *SQLRepository) writeError(op string, err error) error {
	if r.dialect.isUserNameTaken(err) {
		return common.NewStorageError(op, fmt.Errorf("%w: %w", common.ErrorUserNameTaken, err))
	}
	return common.NewStorageError(op, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (*models.User, error) {
	u := &models.User{}
	err := s.Scan(&u.ID, &u.UserName, &u.HashedPassword,
		&u.FirstName, &u.LastName,
		&u.Address1, &u.Address2, &u.City, &u.State, &u.Country)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *SQLRepository) ContainsUserName(ctx context.Context, userName string) (bool, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, r.q(containsQuery), userName).Scan(&n); err != nil {
		return false, common.NewStorageError("contains user name", fmt.Errorf("failed to count users: %w", err))
	}
	return n > 0, nil
}

func (r *SQLRepository) ReadAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, r.q(readAllQuery))
	if err != nil {
		return nil, common.NewStorageError("read all", fmt.Errorf("failed to list users: %w", err))
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, common.NewStorageError("read all", fmt.Errorf("failed to scan user row: %w", err))
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("read all", fmt.Errorf("failed to iterate user rows: %w", err))
	}

	return result, nil
}

func (r *SQLRepository) Read(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, r.q(readQuery), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, common.ErrorNotFound)
		}
		return nil, common.NewStorageError("read", fmt.Errorf("failed to read user %d: %w", id, err))
	}
	return u, nil
}

// Save never mutates user; the returned copy carries the id.
func (r *SQLRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	if user == nil {
		return nil, fmt.Errorf("save user: %w", common.ErrorInvalidArgument)
	}

	saved := *user
	if saved.ID == 0 {
		err := r.db.QueryRowContext(ctx, r.q(insertQuery),
			saved.UserName, saved.HashedPassword,
			saved.FirstName, saved.LastName,
			saved.Address1, saved.Address2, saved.City, saved.State, saved.Country,
		).Scan(&saved.ID)
		if err != nil {
			return nil, r.writeError("insert", err)
		}
		return &saved, nil
	}

	res, err := r.db.ExecContext(ctx, r.q(updateQuery),
		saved.UserName, saved.HashedPassword,
		saved.FirstName, saved.LastName,
		saved.Address1, saved.Address2, saved.City, saved.State, saved.Country,
		saved.ID,
	)
	if err != nil {
		return nil, r.writeError("update", err)
	}
	if err := dbx.ExpectOneRow(res); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("user %d: %w", saved.ID, common.ErrorNotFound)
		}
		return nil, common.NewStorageError("update", err)
	}
	return &saved, nil
}

func (r *SQLRepository) Delete(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("delete user: %w", common.ErrorInvalidArgument)
	}
	if user.ID == 0 {
		return nil
	}

	res, err := r.db.ExecContext(ctx, r.q(deleteQuery), user.ID)
	if err != nil {
		return common.NewStorageError("delete", fmt.Errorf("failed to delete user %d: %w", user.ID, err))
	}
	if err := dbx.ExpectOneRow(res); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("user %d: %w", user.ID, common.ErrorNotFound)
		}
		return common.NewStorageError("delete", err)
	}
	return nil
}

func (r *SQLRepository) Restore(ctx context.Context, user *models.User) (*models.User, error) {
	if user == nil || user.ID == 0 {
		return nil, fmt.Errorf("restore user: %w", common.ErrorInvalidArgument)
	}

	restored := *user
	_, err := r.db.ExecContext(ctx, r.q(restoreQuery),
		restored.ID, restored.UserName, restored.HashedPassword,
		restored.FirstName, restored.LastName,
		restored.Address1, restored.Address2, restored.City, restored.State, restored.Country,
	)
	if err != nil {
		return nil, r.writeError("restore", err)
	}
	return &restored, nil
}
