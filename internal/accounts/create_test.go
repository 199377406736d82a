package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/useraccounts/internal/common"
)

func TestCreateUserForm_PasswordsMatch(t *testing.T) {
	f := (&Service{}).NewCreateUserForm()
	assert.True(t, f.PasswordsMatch(), "both unset")
	assert.False(t, f.PasswordValid(), "unset password is never valid")

	f.SetPassword("abc123")
	assert.False(t, f.PasswordsMatch(), "verify unset")

	f.SetPasswordVerify("abc124")
	assert.False(t, f.PasswordsMatch())

	f.SetPasswordVerify("abc123")
	assert.True(t, f.PasswordsMatch())
	assert.True(t, f.PasswordValid())

	g := (&Service{}).NewCreateUserForm()
	g.SetPassword("")
	g.SetPasswordVerify("")
	assert.True(t, g.PasswordsMatch(), "empty equals empty")
	assert.False(t, g.PasswordValid())
}

func TestCreateUserForm_LiveFeedback(t *testing.T) {
	f := (&Service{}).NewCreateUserForm()

	var seen []PasswordMatchState
	f.OnPasswordMatch(func(s PasswordMatchState) { seen = append(seen, s) })

	st := f.SetPassword("abc123")
	assert.Equal(t, PasswordMatchState{PasswordsMatch: false, PasswordValid: false}, st)
	assert.ErrorIs(t, st.Err(), ErrPasswordsDoNotMatch)

	st = f.SetPasswordVerify("abc123")
	assert.Equal(t, PasswordMatchState{PasswordsMatch: true, PasswordValid: true}, st)
	assert.NoError(t, st.Err())

	st = f.SetPassword("ababab")
	assert.Equal(t, PasswordMatchState{PasswordsMatch: false, PasswordValid: false}, st)

	st = f.SetPasswordVerify("ababab")
	assert.Equal(t, PasswordMatchState{PasswordsMatch: true, PasswordValid: false}, st)
	assert.ErrorIs(t, st.Err(), ErrInvalidPassword)

	require.Len(t, seen, 4)
	assert.Equal(t, st, seen[3])

	f.OnPasswordMatch(nil)
	f.SetPassword("x")
	assert.Len(t, seen, 4)
}

func TestCreateUser_Scenario(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	f := svc.NewCreateUserForm()
	f.SetUserName("alice01")
	f.SetPassword("abc123")
	f.SetPasswordVerify("abc123")
	alice, err := f.CreateUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.ID)
	assert.Equal(t, "alice01", alice.UserName)
	assert.NotEqual(t, "abc123", alice.HashedPassword)

	ok, err := svc.hasher.Verify("abc123", alice.HashedPassword)
	require.NoError(t, err)
	assert.True(t, ok)

	f = svc.NewCreateUserForm()
	f.SetUserName("alice01")
	f.SetPassword("xyz789")
	f.SetPasswordVerify("xyz789")
	_, err = f.CreateUser(ctx)
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	f = svc.NewCreateUserForm()
	f.SetPassword("abc123")
	f.SetPasswordVerify("abc123")
	_, err = f.CreateUser(ctx)
	require.ErrorIs(t, err, ErrNoUserName)

	f = svc.NewCreateUserForm()
	f.SetUserName("bob02")
	f.SetPassword("aaaa")
	f.SetPasswordVerify("aaaa")
	_, err = f.CreateUser(ctx)
	require.ErrorIs(t, err, ErrInvalidPassword)

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateUser_PriorityOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("no user name beats everything", func(t *testing.T) {
		repo := &fakeRepo{contains: true}
		f := NewService(repo, &fakeHasher{}).NewCreateUserForm()
		f.SetPassword("a")
		_, err := f.CreateUser(ctx)
		assert.ErrorIs(t, err, ErrNoUserName)
	})

	t.Run("existing name beats invalid password", func(t *testing.T) {
		repo := &fakeRepo{contains: true}
		f := NewService(repo, &fakeHasher{}).NewCreateUserForm()
		f.SetUserName("alice01")
		f.SetPassword("a")
		_, err := f.CreateUser(ctx)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("mismatch reads as invalid password", func(t *testing.T) {
		h := &fakeHasher{}
		repo := &fakeRepo{}
		f := NewService(repo, h).NewCreateUserForm()
		f.SetUserName("alice01")
		f.SetPassword("abc123")
		f.SetPasswordVerify("abc124")
		_, err := f.CreateUser(ctx)
		assert.ErrorIs(t, err, ErrInvalidPassword)
		assert.NotErrorIs(t, err, ErrPasswordsDoNotMatch)
		assert.Zero(t, h.calls)
		assert.Empty(t, repo.saved)
	})

	t.Run("invalid user name is not checked at creation", func(t *testing.T) {
		repo := &fakeRepo{}
		f := NewService(repo, &fakeHasher{}).NewCreateUserForm()
		f.SetUserName("al")
		f.SetPassword("abc123")
		f.SetPasswordVerify("abc123")
		assert.False(t, f.IsUserNameValid())
		u, err := f.CreateUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "hashed:abc123", u.HashedPassword)
	})
}

func TestCreateUser_Failures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	fill := func(f *CreateUserForm) {
		f.SetUserName("alice01")
		f.SetPassword("abc123")
		f.SetPasswordVerify("abc123")
	}

	t.Run("contains check fails", func(t *testing.T) {
		f := NewService(&fakeRepo{containsErr: common.NewStorageError("contains", boom)}, &fakeHasher{}).NewCreateUserForm()
		fill(f)
		_, err := f.CreateUser(ctx)
		assert.ErrorIs(t, err, ErrUnknown)
		assert.ErrorIs(t, err, common.ErrorStorage)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("hashing fails", func(t *testing.T) {
		repo := &fakeRepo{}
		f := NewService(repo, &fakeHasher{err: common.NewHashingError("hash", boom)}).NewCreateUserForm()
		fill(f)
		_, err := f.CreateUser(ctx)
		assert.ErrorIs(t, err, ErrUnknown)
		assert.ErrorIs(t, err, common.ErrorHashing)
		assert.Empty(t, repo.saved)
	})

	t.Run("save fails", func(t *testing.T) {
		f := NewService(&fakeRepo{saveErr: common.NewStorageError("insert", boom)}, &fakeHasher{}).NewCreateUserForm()
		fill(f)
		_, err := f.CreateUser(ctx)
		assert.ErrorIs(t, err, ErrUnknown)
		assert.ErrorIs(t, err, boom)

		var ce *CreateUserError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, ErrUnknown, ce.Reason)
	})

	t.Run("lost race on unique index", func(t *testing.T) {
		taken := common.NewStorageError("insert", errors.Join(common.ErrorUserNameTaken, boom))
		f := NewService(&fakeRepo{saveErr: taken}, &fakeHasher{}).NewCreateUserForm()
		fill(f)
		_, err := f.CreateUser(ctx)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.ErrorIs(t, err, common.ErrorStorage)
		assert.NotErrorIs(t, err, ErrUnknown)
	})
}

func TestMessage(t *testing.T) {
	reasons := []error{ErrNoUserName, ErrInvalidPassword, ErrPasswordsDoNotMatch, ErrUserAlreadyExists, ErrUnknown}

	seen := map[string]bool{}
	for _, r := range reasons {
		m := Message(&CreateUserError{Reason: r})
		assert.NotEmpty(t, m)
		assert.Equal(t, m, Message(r), "bare sentinel and wrapped reason read the same")
		seen[m] = true
	}
	assert.Len(t, seen, len(reasons), "every reason has its own message")

	assert.Equal(t, Message(ErrUnknown), Message(errors.New("anything else")))
	assert.Empty(t, Message(nil))
}

func TestCreateUserError_Error(t *testing.T) {
	assert.Equal(t, "create user: no user name", refuse(ErrNoUserName).Error())
	assert.Equal(t, "create user: unknown error: boom", unknown(errors.New("boom")).Error())
}
