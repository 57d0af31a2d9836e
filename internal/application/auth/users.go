package auth

import (
	"context"

	"github.com/finadvise/auth-service/internal/domain"
)

// GetUserByID backs the /api/me endpoint.
func (s *Service) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers backs the admin user listing.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ListClients returns the identities an advisor works with. In this system
// that is every identity with the plain user role.
func (s *Service) ListClients(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleUser)
}
