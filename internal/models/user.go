package models

// User is the row shape of the users table.
type User struct {
	UserID         string `db:"user_id"`
	Username       string `db:"username"`
	Email          string `db:"email"`
	HashedPassword string `db:"hashed_password"`
	IsActive       bool   `db:"is_active"`
	Timestamps
}
