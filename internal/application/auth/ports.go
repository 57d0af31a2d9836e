package auth

import (
	"context"
	"time"

	"github.com/finadvise/auth-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for identities. The auth flow only reads; identities are
provisioned out of band (seeding, admin tooling).
*/
type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Compare reports a mismatch as (false, nil); an error means
the stored hash is unusable and must surface as an internal failure, never as
a client-visible distinction.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) (bool, error)
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by the service and the auth middleware.
*/
type TokenClaims struct {
	UserID   int64
	Username string
	Role     domain.Role
	Exp      time.Time
}

type TokenSigner interface {
	SignAccessToken(user domain.User, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
