package users

import (
	"context"

	"github.com/dmitrijs2005/railticket/internal/server/models"
)

// Repository persists user accounts. Lookups return common.ErrorNotFound for
// missing rows; unique violations come back as *common.DuplicateIdentityError.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	FindBy(ctx context.Context, field, value string) (*models.User, error)
	Exists(ctx context.Context, email, userName, phone string) (bool, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
