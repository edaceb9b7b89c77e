package domain

import "time"

// Well-known reasons recorded with a password change.
const (
	PasswordChangeReasonRegistration = "registration"
	PasswordChangeReasonManual       = "manual_change"
	PasswordChangeReasonReset        = "password_reset"
)

// PasswordHistoryEntry is one append-only record of a user's password hash.
// Entries of a user are ordered by ChangedAt; the newest one should carry the
// user's current hash.
type PasswordHistoryEntry struct {
	HistoryID      string    `json:"historyID"`
	UserID         string    `json:"userID"`
	HashedPassword string    `json:"-"`
	ChangedAt      time.Time `json:"changedAt"`
	Reason         *string   `json:"reason,omitempty"`
	IPAddress      *string   `json:"ipAddress,omitempty"`
}
