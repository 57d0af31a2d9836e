package postgres

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/finadvise/auth-service/internal/domain"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedUsers provisions the dev identities. Duplicates are ignored so the
// service can restart against an already-seeded database.
func SeedUsers(ctx context.Context, repo SeederRepo, hasher SeederHasher, log zerolog.Logger) {
	type seedUser struct {
		Username string
		Role     domain.Role
		Pass     string
	}

	seeds := []seedUser{
		{Username: "admin1", Role: domain.RoleAdmin, Pass: "AdminPass123!"},
		{Username: "advisor1", Role: domain.RoleAdvisor, Pass: "AdvisorPass123!"},
		{Username: "user1", Role: domain.RoleUser, Pass: "UserPass123!"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Warn().Err(err).Str("username", s.Username).Msg("seed hash failed")
			continue
		}

		_, err = repo.Create(ctx, domain.User{
			Username:     s.Username,
			PasswordHash: hash,
			Role:         s.Role,
		})
		if err != nil {
			// ignore duplicates (restart safe)
			continue
		}
	}

	log.Info().Msg("postgres users seeded")
}
