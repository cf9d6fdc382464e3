package users

import (
	"context"

	"github.com/dmitrijs2005/r2vault/internal/server/models"
)

// Repository is the credential store. Create must enforce username
// uniqueness atomically (two concurrent registrations of the same name must
// not both succeed).
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}
