package users

import (
	"context"

	"github.com/dmitrijs2005/useraccounts/internal/models"
)

// Repository is the account store used by the account service.
type Repository interface {
	ContainsUserName(ctx context.Context, userName string) (bool, error)
	ReadAll(ctx context.Context) ([]*models.User, error)
	Read(ctx context.Context, id int64) (*models.User, error)
	Save(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, user *models.User) error

	// Restore re-inserts a deleted user under its original id.
	Restore(ctx context.Context, user *models.User) (*models.User, error)
}
