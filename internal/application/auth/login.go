package auth

import (
	"context"
	"strings"

	"github.com/finadvise/auth-service/internal/domain"
)

// Login authenticates a user and issues an access token.
// IMPORTANT: unknown username and wrong password must produce the identical
// error so responses cannot be used for user enumeration.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			// Hide not-found behind invalid credentials
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, err
	}

	ok, err := s.hasher.Compare(u.PasswordHash, password)
	if err != nil {
		// Unusable stored hash surfaces as 500 rather than 401
		return LoginResult{}, err
	}
	if !ok {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	tok, err := s.signer.SignAccessToken(u, s.accessTTL)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: u, Token: tok}, nil
}
