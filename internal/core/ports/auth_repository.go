package ports

import (
	"context"

	"github.com/housebroker/listing-api/internal/core/domain"
)

// UserRepository defines the interface for user identity persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RoleRepository defines the interface for the seeded role catalog.
type RoleRepository interface {
	Exists(ctx context.Context, role domain.Role) (bool, error)
	Ensure(ctx context.Context, role domain.Role) error
}
