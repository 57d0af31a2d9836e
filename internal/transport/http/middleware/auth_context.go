package middleware

import (
	"context"

	"github.com/finadvise/auth-service/internal/application/auth"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

// WithClaims stores the verified token claims as a value; handlers and the
// role gate read them back instead of mutating a shared request object.
func WithClaims(ctx context.Context, claims auth.TokenClaims) context.Context {
	return context.WithValue(ctx, ctxClaims, claims)
}

func ClaimsFromContext(ctx context.Context) (auth.TokenClaims, bool) {
	c, ok := ctx.Value(ctxClaims).(auth.TokenClaims)
	return c, ok
}
