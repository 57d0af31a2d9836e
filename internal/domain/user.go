package domain

// User is the stored identity record: looked up at login, never mutated by
// the auth flow. PasswordHash must never appear in responses or logs.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
}
