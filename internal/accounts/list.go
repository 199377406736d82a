package accounts

import (
	"context"

	"github.com/dmitrijs2005/useraccounts/internal/models"
)

func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.ReadAll(ctx)
}

// DeleteUser removes user from the store. The caller keeps user if it wants
// to offer undo through RestoreUser; nothing is retained here.
func (s *Service) DeleteUser(ctx context.Context, user *models.User) error {
	return s.repo.Delete(ctx, user)
}

// RestoreUser puts back a user removed by DeleteUser under its original id.
func (s *Service) RestoreUser(ctx context.Context, user *models.User) (*models.User, error) {
	return s.repo.Restore(ctx, user)
}
