package dto

import (
	"time"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
)

// PasswordHistoryParams defines query parameters for listing password history.
type PasswordHistoryParams struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// PasswordHistoryItem is one entry of the password audit trail. The hash is never exposed.
type PasswordHistoryItem struct {
	ChangedAt time.Time `json:"changed_at"`
	Reason    *string   `json:"reason"`
	IPAddress *string   `json:"ip_address"`
}

// PasswordHistoryResponse wraps a user's password audit trail, newest first.
type PasswordHistoryResponse struct {
	Username string                `json:"username"`
	History  []PasswordHistoryItem `json:"history"`
}

// ToPasswordHistoryResponse converts history entries to the response DTO
func ToPasswordHistoryResponse(username string, entries []domain.PasswordHistoryEntry) PasswordHistoryResponse {
	items := make([]PasswordHistoryItem, len(entries))
	for i, e := range entries {
		items[i] = PasswordHistoryItem{
			ChangedAt: e.ChangedAt,
			Reason:    e.Reason,
			IPAddress: e.IPAddress,
		}
	}
	return PasswordHistoryResponse{Username: username, History: items}
}
