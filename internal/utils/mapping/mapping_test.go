package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserMappingKeepsHash(t *testing.T) {
	now := time.Now().UTC()
	user := domain.User{
		UserID:         "u-1",
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$hash",
		IsActive:       true,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	m := ToModelUser(user)
	assert.Equal(t, "$2a$10$hash", m.HashedPassword)
	assert.Equal(t, now, m.CreatedAt)

	back := ToDomainUser(m)
	assert.Equal(t, user, back)
}

func TestPropertySliceMapping(t *testing.T) {
	rooms := int32(3)
	props := ToDomainPropertySlice(nil)
	assert.Empty(t, props)

	m := ToModelProperty(domain.Property{PropertyID: "p-1", Title: "Loft", Price: 250000, Location: "Lyon", Rooms: &rooms})
	d := ToDomainProperty(m)
	assert.Equal(t, "Loft", d.Title)
	assert.Equal(t, int32(3), *d.Rooms)
	assert.Nil(t, d.Area)
}
