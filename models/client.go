package models

import (
	"time"

	"gorm.io/gorm"
)

// Role classifies what a client is allowed to do. Stored as a plain string
// column but only ever constructed through ParseRole or the constants below.
type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleStaff, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// IsAdmin reports whether the role carries full administrative rights.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// IsStaff reports whether the role is exactly staff. Admin does not satisfy
// staff-only checks.
func (r Role) IsStaff() bool { return r == RoleStaff }

// IsAdminOrStaff reports whether the role carries elevated rights; admin
// implicitly satisfies it.
func (r Role) IsAdminOrStaff() bool { return r == RoleAdmin || r == RoleStaff }

type Client struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Email     string `gorm:"uniqueIndex;size:255" json:"email"`
	Phone     string `gorm:"size:50" json:"phone"`
	Password  string `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	Role      Role   `gorm:"size:20;default:user" json:"role"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
