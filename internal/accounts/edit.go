package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/dmitrijs2005/useraccounts/internal/models"
)

// LoadUser returns the stored user with id. Store errors are returned as is.
func (s *Service) LoadUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.Read(ctx, id)
}

// SaveUser writes back a user obtained from LoadUser. The user must carry the
// id assigned by the store.
func (s *Service) SaveUser(ctx context.Context, user *models.User) (*models.User, error) {
	if !user.IsPersisted() {
		return nil, fmt.Errorf("save user: %w", common.ErrorInvalidArgument)
	}
	return s.repo.Save(ctx, user)
}

// EditUserForm holds a loaded user while its profile is being edited. User
// name and password are not editable here.
type EditUserForm struct {
	svc  *Service
	user models.User
}

func (s *Service) NewEditUserForm(ctx context.Context, id int64) (*EditUserForm, error) {
	u, err := s.LoadUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &EditUserForm{svc: s, user: *u}, nil
}

// User returns a copy of the user as currently edited.
func (f *EditUserForm) User() *models.User {
	u := f.user
	return &u
}

func (f *EditUserForm) Profile() models.Profile { return f.user.Profile() }

func (f *EditUserForm) SetProfile(p models.Profile) { f.user.ApplyProfile(p) }

func (f *EditUserForm) SetFirstName(v string) { f.user.FirstName = v }
func (f *EditUserForm) SetLastName(v string)  { f.user.LastName = v }
func (f *EditUserForm) SetAddress1(v string)  { f.user.Address1 = v }
func (f *EditUserForm) SetAddress2(v string)  { f.user.Address2 = v }
func (f *EditUserForm) SetCity(v string)      { f.user.City = v }
func (f *EditUserForm) SetState(v string)     { f.user.State = v }
func (f *EditUserForm) SetCountry(v string)   { f.user.Country = v }

// Save persists the edited user. On failure the edits stay in the form so
// the caller can retry.
func (f *EditUserForm) Save(ctx context.Context) (*models.User, error) {
	saved, err := f.svc.SaveUser(ctx, &f.user)
	if err != nil {
		return nil, err
	}
	f.user = *saved
	return f.User(), nil
}
