package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation     ErrKind = "validation"     // 400
	KindAuth           ErrKind = "auth"           // 401
	KindForbidden      ErrKind = "forbidden"      // 403
	KindNotFound       ErrKind = "not_found"      // 404
	KindConflict       ErrKind = "conflict"       // 409
	KindRateLimited    ErrKind = "rate_limited"   // 429
	KindInfrastructure ErrKind = "infrastructure" // 500
	KindInternal       ErrKind = "internal"       // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code, for logs and tests (do not change casually)
// - Message: the exact client-facing message; anything sensitive stays in Cause
// - Cause: wrapped internal error for logging/diagnostics only
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrCredentialsRequired() *Error {
	return New(KindValidation, "credentials_required", "Username and password required")
}

// ----------------------
// Auth errors (401)
// ----------------------

// IMPORTANT: use this for every login failure, unknown username included,
// to avoid user enumeration.
func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "Invalid credentials")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "No token provided")
}

func ErrTokenMalformed() *Error {
	return New(KindAuth, "token_malformed", "Malformed token")
}

// ----------------------
// Forbidden (403)
// ----------------------

// Invalid and expired tokens share one client message; the codes stay
// distinct so logs can tell them apart.
func ErrTokenInvalid() *Error {
	return New(KindForbidden, "token_invalid", "Invalid or expired token")
}

func ErrTokenExpired() *Error {
	return New(KindForbidden, "token_expired", "Invalid or expired token")
}

func ErrInsufficientRole() *Error {
	return New(KindForbidden, "insufficient_role", "Access denied: insufficient permissions")
}

// ----------------------
// Not Found (404)
// ----------------------

// Never surfaces from login; the orchestrator hides it behind
// ErrInvalidCredentials.
func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "User not found")
}

// ----------------------
// Conflict (409)
// ----------------------

// Provisioning-only; the login flow never creates users.
func ErrUsernameTaken() *Error {
	return New(KindConflict, "username_taken", "Username already registered")
}

// ----------------------
// Rate limit (429)
// ----------------------

func ErrRateLimited() *Error {
	return New(KindRateLimited, "rate_limited", "Too many requests")
}

// ----------------------
// Infrastructure / internal (500)
// ----------------------

func ErrDBUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "db_unavailable", "Server error", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "Server error", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "Server error", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "Server error", cause)
}
