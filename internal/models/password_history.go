package models

import "time"

// PasswordHistory is the row shape of the password_history table.
type PasswordHistory struct {
	HistoryID      string    `db:"history_id"`
	UserID         string    `db:"user_id"`
	HashedPassword string    `db:"hashed_password"`
	ChangedAt      time.Time `db:"changed_at"`
	Reason         *string   `db:"reason"`
	IPAddress      *string   `db:"ip_address"`
}
