package model

import "time"

// User represents a registered player in the system.
type User struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName    string    `json:"firstName" gorm:"size:255"`
	LastName     string    `json:"lastName" gorm:"size:255"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// SerializedUser is the public view of a user: what registration returns and
// what gets embedded in auth tokens. The password hash never appears here.
type SerializedUser struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Serialize returns the public view of the user.
func (u *User) Serialize() SerializedUser {
	return SerializedUser{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
