package accounts

import (
	"context"

	"github.com/pkg/errors"

	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/dmitrijs2005/useraccounts/internal/models"
)

// PasswordMatchState is the live feedback recomputed on every password edit.
// It is advisory and does not gate CreateUser.
type PasswordMatchState struct {
	PasswordsMatch bool
	PasswordValid  bool
}

// Err returns the reason the current passwords would be refused, or nil.
func (s PasswordMatchState) Err() error {
	switch {
	case !s.PasswordsMatch:
		return ErrPasswordsDoNotMatch
	case !s.PasswordValid:
		return ErrInvalidPassword
	default:
		return nil
	}
}

// CreateUserForm accumulates the inputs of one creation attempt. Unset
// passwords are distinct from empty ones; a fresh form has both unset.
type CreateUserForm struct {
	svc *Service

	userName       string
	password       *string
	passwordVerify *string

	onPasswordMatch func(PasswordMatchState)
}

func (s *Service) NewCreateUserForm() *CreateUserForm {
	return &CreateUserForm{svc: s}
}

// OnPasswordMatch registers fn to receive the state after every password
// edit. Passing nil removes the observer.
func (f *CreateUserForm) OnPasswordMatch(fn func(PasswordMatchState)) {
	f.onPasswordMatch = fn
}

func (f *CreateUserForm) UserName() string { return f.userName }

func (f *CreateUserForm) SetUserName(name string) {
	f.userName = name
}

func (f *CreateUserForm) SetPassword(password string) PasswordMatchState {
	f.password = &password
	return f.notify()
}

func (f *CreateUserForm) SetPasswordVerify(password string) PasswordMatchState {
	f.passwordVerify = &password
	return f.notify()
}

func (f *CreateUserForm) notify() PasswordMatchState {
	st := f.State()
	if f.onPasswordMatch != nil {
		f.onPasswordMatch(st)
	}
	return st
}

func (f *CreateUserForm) State() PasswordMatchState {
	return PasswordMatchState{
		PasswordsMatch: f.PasswordsMatch(),
		PasswordValid:  f.PasswordValid(),
	}
}

func (f *CreateUserForm) IsUserNameValid() bool {
	return IsUserNameValid(f.userName)
}

// PasswordsMatch reports exact equality of password and verify. Two unset
// values match.
func (f *CreateUserForm) PasswordsMatch() bool {
	if f.password == nil || f.passwordVerify == nil {
		return f.password == nil && f.passwordVerify == nil
	}
	return *f.password == *f.passwordVerify
}

func (f *CreateUserForm) PasswordValid() bool {
	return f.password != nil && f.PasswordsMatch() && IsPasswordValid(*f.password)
}

// CreateUser persists a new user from the form. Checks run in a fixed order
// and the first failing one decides the reason:
//
//  1. empty user name: ErrNoUserName
//  2. user name already stored: ErrUserAlreadyExists
//  3. password invalid or not matching: ErrInvalidPassword
//
// A uniqueness violation raised by the store on insert also yields
// ErrUserAlreadyExists. Any other failure is ErrUnknown with the cause kept.
// Every returned error is a *CreateUserError.
func (f *CreateUserForm) CreateUser(ctx context.Context) (*models.User, error) {
	if f.userName == "" {
		return nil, refuse(ErrNoUserName)
	}

	exists, err := f.svc.repo.ContainsUserName(ctx, f.userName)
	if err != nil {
		return nil, unknown(err)
	}
	if exists {
		return nil, refuse(ErrUserAlreadyExists)
	}

	if !f.PasswordValid() {
		return nil, refuse(ErrInvalidPassword)
	}

	hashed, err := f.svc.hasher.Hash(*f.password)
	if err != nil {
		return nil, unknown(err)
	}

	saved, err := f.svc.repo.Save(ctx, &models.User{UserName: f.userName, HashedPassword: hashed})
	if err != nil {
		if errors.Is(err, common.ErrorUserNameTaken) {
			return nil, &CreateUserError{Reason: ErrUserAlreadyExists, Err: err}
		}
		return nil, unknown(err)
	}
	return saved, nil
}
