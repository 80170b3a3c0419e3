package ports

import (
	"context"

	"github.com/housebroker/listing-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new identity.
type RegisterInput struct {
	Email     string
	Password  string
	Role      domain.Role
	FirstName string
	LastName  string
	Phone     string
	Bio       string
}

// AuthService defines registration, login, and token verification.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// AuditSink accepts auth events without blocking the originating request.
type AuditSink interface {
	Record(event domain.AuthEvent)
}

// AuditService persists a single auth event.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuditRepository defines the interface for the audit trail store.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
