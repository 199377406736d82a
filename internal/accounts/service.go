package accounts

import (
	"github.com/dmitrijs2005/useraccounts/internal/cryptox"
	"github.com/dmitrijs2005/useraccounts/internal/repositories/users"
)

// Service holds the collaborators shared by every flow. It keeps no
// per-request state, so one Service can serve any number of forms.
type Service struct {
	repo   users.Repository
	hasher cryptox.PasswordHasher
}

func NewService(repo users.Repository, hasher cryptox.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}
