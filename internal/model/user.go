package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an application user record as stored in the `users`
// table.  Email and Username are unique.  The password hash never leaves
// the server, so it is excluded from JSON.
//
// Fields:
//  ID           – UUID primary key.
//  Email        – unique, lower-cased email address.
//  Username     – unique handle.
//  PasswordHash – bcrypt hash (column `password`).
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Username     string    `gorm:"size:30;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`

	Movies []Movie `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
