package domain

// User represents an account holder in the domain.
// UserID is assigned at creation and never changes.
type User struct {
	UserID         string `json:"userID"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"`
	IsActive       bool   `json:"isActive"`
	Timestamps
}

func (u *User) GetUserID() string   { return u.UserID }
func (u *User) GetUsername() string { return u.Username }
func (u *User) GetEmail() string    { return u.Email }
