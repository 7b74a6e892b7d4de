package entity

import "time"

// User is a chat participant owning one or more profiles
type User struct {
	Key               string
	ChatID            int64
	Username          string
	DisplayName       string
	Language          string
	DefaultProfileKey string
	RegisteredAt      time.Time
}

// UserUpdate is a partial update; nil fields are left untouched
type UserUpdate struct {
	DisplayName       *string
	Language          *string
	DefaultProfileKey *string
}

// IsEmpty reports whether the update changes nothing
func (u UserUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.Language == nil && u.DefaultProfileKey == nil
}

// Sender identifies whoever triggered an interaction
type Sender struct {
	ID        int64
	ChatID    int64
	Username  string
	FirstName string
	LastName  string
}

// Account is a user together with its default profile
type Account struct {
	User    *User
	Profile *Profile
}
