package model

import (
	"strings"
	"time"
)

// Role is the principal's authorization level carried in the session token.
type Role int

const (
	// RoleStandard is assigned on registration.
	RoleStandard Role = iota
	// RoleAdmin is assigned by seeding or by an administrator.
	RoleAdmin
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	default:
		return "standard"
	}
}

// ParseRole maps a role name back to a Role. Unknown names are Standard.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), "admin") {
		return RoleAdmin
	}
	return RoleStandard
}

// User represents a principal in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Role         Role      `json:"role" gorm:"not null;default:0"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
