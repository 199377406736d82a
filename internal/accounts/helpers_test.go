package accounts

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/useraccounts/internal/cryptox"
	"github.com/dmitrijs2005/useraccounts/internal/migrations"
	"github.com/dmitrijs2005/useraccounts/internal/models"
	"github.com/dmitrijs2005/useraccounts/internal/repositories/users"
)

func newSQLiteRepo(t *testing.T) *users.SQLRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	fsys, err := migrations.For("sqlite")
	require.NoError(t, err)
	p, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	require.NoError(t, err)
	_, err = p.Up(context.Background())
	require.NoError(t, err)

	return users.NewSQLiteRepository(db)
}

func newTestService(t *testing.T) (*Service, *users.SQLRepository) {
	t.Helper()
	repo := newSQLiteRepo(t)
	return NewService(repo, cryptox.NewBcryptHasher()), repo
}

// fakeRepo lets tests inject failures at each store call.
type fakeRepo struct {
	users.Repository

	contains    bool
	containsErr error
	saveErr     error
	saved       []*models.User
}

func (f *fakeRepo) ContainsUserName(context.Context, string) (bool, error) {
	return f.contains, f.containsErr
}

func (f *fakeRepo) Save(_ context.Context, u *models.User) (*models.User, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	c := *u
	c.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, &c)
	return &c, nil
}

type fakeHasher struct {
	err   error
	calls int
}

func (h *fakeHasher) Hash(raw string) (string, error) {
	h.calls++
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + raw, nil
}

func (h *fakeHasher) Verify(raw, hashed string) (bool, error) {
	return hashed == "hashed:"+raw, nil
}
