package audit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/finadvise/auth-service/internal/pkg/reqid"
)

// Logger provides structured audit logging for auth events. Usernames are
// logged; passwords and password hashes never are.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

// LoginSuccess logs a successful login.
func (l *Logger) LoginSuccess(ctx context.Context, username, role string) {
	l.log.Info().
		Str("action", "login_success").
		Str("username", username).
		Str("role", role).
		Str("request_id", reqid.FromContext(ctx)).
		Msg("user logged in")
}

// LoginFailed logs a failed login attempt. The reason is for operators only;
// clients always see the same generic message.
func (l *Logger) LoginFailed(ctx context.Context, username, reason string) {
	l.log.Warn().
		Str("action", "login_failed").
		Str("username", username).
		Str("reason", reason).
		Str("request_id", reqid.FromContext(ctx)).
		Msg("login attempt failed")
}

// AccessDenied logs a role check failure on a protected route.
func (l *Logger) AccessDenied(ctx context.Context, username, role, path string) {
	l.log.Warn().
		Str("action", "access_denied").
		Str("username", username).
		Str("role", role).
		Str("path", path).
		Str("request_id", reqid.FromContext(ctx)).
		Msg("insufficient role for route")
}
