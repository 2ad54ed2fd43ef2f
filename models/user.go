package models

import (
	"time"
)

const UserTable = "lib_users"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the borrower account. Accounts are created by the auth service;
// this service only reads them to resolve names and roles.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Username string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Role     Role   `gorm:"size:20;not null;default:'user'" json:"role"`

	LastSeenAt *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (User) TableName() string {
	return UserTable
}
