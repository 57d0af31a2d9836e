package auth

import (
	"time"

	"github.com/finadvise/auth-service/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner

	accessTTL time.Duration
}

type Config struct {
	AccessTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Service{
		users:     users,
		hasher:    hasher,
		signer:    signer,
		accessTTL: ttl,
	}
}

// LoginResult carries the authenticated identity and its access token.
// PasswordHash stays on the domain.User; handlers must not serialize it.
type LoginResult struct {
	User  domain.User
	Token string
}
