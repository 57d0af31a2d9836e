package memory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/finadvise/auth-service/internal/domain"
)

// Hasher is the minimal surface we need for seeding.
type Hasher interface {
	Hash(password string) (string, error)
}

type seedUser struct {
	Username string
	Role     domain.Role
	Pass     string
}

// Dev-only credentials, matching the Postgres seed.
var seeds = []seedUser{
	{Username: "admin1", Role: domain.RoleAdmin, Pass: "AdminPass123!"},
	{Username: "advisor1", Role: domain.RoleAdvisor, Pass: "AdvisorPass123!"},
	{Username: "user1", Role: domain.RoleUser, Pass: "UserPass123!"},
}

// SeedUsers creates initial users for local development (in-memory only).
// Safe to call multiple times (duplicates ignored).
func SeedUsers(ctx context.Context, users *UserRepo, hasher Hasher, log zerolog.Logger) {
	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Warn().Err(err).Str("username", s.Username).Msg("seed hash failed")
			continue
		}

		_, err = users.Create(ctx, domain.User{
			Username:     s.Username,
			PasswordHash: hash,
			Role:         s.Role,
		})
		if err != nil {
			// ignore duplicates / restart
			continue
		}
	}

	log.Info().Msg("in-memory users seeded")
}
