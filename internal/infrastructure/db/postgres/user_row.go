package postgres

import "time"

// userRow mirrors the users table.
type userRow struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
